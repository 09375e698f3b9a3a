package entities

// Role is the acting identity's kind, as asserted by the auth provider.
type Role string

const (
	RolePatient  Role = "patient"
	RolePharmacy Role = "pharmacy"
)

func (r Role) IsValid() bool {
	return r == RolePatient || r == RolePharmacy
}

// Identity is the resolved caller of a request. It is trusted as-is.
type Identity struct {
	UserID string
	Role   Role
}

// Profile is read-only user data used to address notifications.
type Profile struct {
	ID            string `json:"id"`
	Role          Role   `json:"role"`
	DisplayName   string `json:"display_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LicenseNumber string `json:"license_number,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
}

func (p Profile) Contact() Contact {
	return Contact{Name: p.DisplayName, Email: p.Email, Phone: p.Phone, Address: p.Address}
}

// Contact is the human-facing part of a profile that goes into emails and PDFs.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}
