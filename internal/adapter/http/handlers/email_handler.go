package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "rxquote/internal/adapter/http/dto/request"
	response "rxquote/internal/adapter/http/dto/response"
	"rxquote/internal/usecase"
	"rxquote/internal/usecase/interfaces"
	"rxquote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errMissingPatientEmail  = pkg.NewDomainErrorSimple("MISSING_PATIENT_EMAIL", "patientEmail is required", http.StatusBadRequest)
	errMissingPharmacyEmail = pkg.NewDomainErrorSimple("MISSING_PHARMACY_EMAIL", "pharmacyEmail is required", http.StatusBadRequest)
	errInvalidDeliveryFee   = pkg.NewDomainErrorSimple("INVALID_DELIVERY_FEE", "deliveryFee must be a non-negative number", http.StatusBadRequest)
	errInvalidStatus        = pkg.NewDomainErrorSimple("INVALID_STATUS", "status must be accepted or rejected", http.StatusBadRequest)
)

// EmailHandler exposes the notification emails directly, for clients that drive the
// lifecycle themselves.
type EmailHandler struct {
	notifier interfaces.INotifier
	origin   string
	log      *zap.Logger
}

func NewEmailHandler(notifier interfaces.INotifier, origin string, log *zap.Logger) *EmailHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailHandler{notifier: notifier, origin: origin, log: log}
}

// SendQuotationEmail godoc
// @Summary      Email a new quotation to a patient
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        payload body request.QuotationEmailRequest true "Quotation"
// @Success      200 {object} response.MessageResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /quotation-email [post]
func (h *EmailHandler) SendQuotationEmail(c *gin.Context) {
	var payload request.QuotationEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if strings.TrimSpace(payload.PatientEmail) == "" {
		writeAppError(c, errMissingPatientEmail)
		return
	}
	notice, err := payload.ToNotice(h.origin)
	if err != nil {
		writeAppError(c, mapEmailRequestError(err))
		return
	}

	if err := h.notifier.NotifyQuoteCreated(c.Request.Context(), notice); err != nil {
		h.writeDeliveryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quotation email sent"})
}

// SendQuotationStatusEmail godoc
// @Summary      Email a quotation decision to a pharmacy
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        payload body request.QuotationStatusEmailRequest true "Decision"
// @Success      200 {object} response.MessageResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      500 {object} pkg.HTTPError
// @Router       /quotation-status-email [post]
func (h *EmailHandler) SendQuotationStatusEmail(c *gin.Context) {
	var payload request.QuotationStatusEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if strings.TrimSpace(payload.PharmacyEmail) == "" {
		writeAppError(c, errMissingPharmacyEmail)
		return
	}
	notice, err := payload.ToNotice(h.origin)
	if err != nil {
		writeAppError(c, mapEmailRequestError(err))
		return
	}

	if err := h.notifier.NotifyQuoteDecided(c.Request.Context(), notice); err != nil {
		h.writeDeliveryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quotation status email sent"})
}

func (h *EmailHandler) writeDeliveryError(c *gin.Context, err error) {
	var delivery *usecase.NotificationDeliveryError
	if errors.As(err, &delivery) && delivery.Stage == usecase.StageRecipient {
		writeAppError(c, pkg.NewDomainError("MISSING_RECIPIENT", "Recipient email is required", err, http.StatusBadRequest))
		return
	}
	h.log.Error("email dispatch failed", zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	appErr := pkg.NewDomainError("EMAIL_FAILED", "Failed to send email", err, http.StatusInternalServerError)
	writeAppError(c, appErr)
}

func mapEmailRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDeliveryFee):
		return errInvalidDeliveryFee
	case errors.Is(err, request.ErrInvalidStatus):
		return errInvalidStatus
	default:
		return errInvalidPayload
	}
}
