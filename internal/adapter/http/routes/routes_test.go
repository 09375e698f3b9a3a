package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rxquote/internal/adapter/http/handlers"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Dependencies{
		Verifier:            middleware.NewTokenVerifier(config.AuthConfig{JWTSecret: "secret"}),
		EmailLimiter:        middleware.NewIPRateLimiter(config.RateLimitConfig{RequestsPerSecond: 10, Burst: 10}),
		PrescriptionHandler: handlers.NewPrescriptionHandler(nil, nil),
		QuoteHandler:        handlers.NewQuoteHandler(nil, nil),
		EmailHandler:        handlers.NewEmailHandler(nil, "", nil),
	})
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "user-1",
		"exp":      time.Now().Add(time.Hour).Unix(),
		"app_role": role,
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return token
}

func TestRouter(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"ping is public", http.MethodGet, "/v1/ping", "", http.StatusOK},
		{"prescriptions need auth", http.MethodGet, "/v1/prescriptions", "", http.StatusUnauthorized},
		{"patient route rejects pharmacy", http.MethodGet, "/v1/prescriptions", tokenFor(t, "pharmacy"), http.StatusForbidden},
		{"pharmacy route rejects patient", http.MethodGet, "/v1/prescriptions/open", tokenFor(t, "patient"), http.StatusForbidden},
		{"accept is patient only", http.MethodPatch, "/v1/quotes/q-1/accept", tokenFor(t, "pharmacy"), http.StatusForbidden},
		{"complete is pharmacy only", http.MethodPatch, "/v1/quotes/q-1/complete", tokenFor(t, "patient"), http.StatusForbidden},
		{"unknown role is forbidden", http.MethodGet, "/v1/quotes/q-1", tokenFor(t, "admin"), http.StatusForbidden},
		{"email endpoint validates body", http.MethodPost, "/quotation-email", "", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
