package handlers

import (
	"net/http"

	request "rxquote/internal/adapter/http/dto/request"
	response "rxquote/internal/adapter/http/dto/response"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PrescriptionHandler struct {
	usecase usecase.IPrescriptionUseCase
	log     *zap.Logger
}

func NewPrescriptionHandler(uc usecase.IPrescriptionUseCase, log *zap.Logger) *PrescriptionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PrescriptionHandler{usecase: uc, log: log}
}

// CreatePrescription godoc
// @Summary      Create a prescription
// @Tags         prescriptions
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload body request.CreatePrescriptionRequest true "Prescription"
// @Success      201 {object} response.PrescriptionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Router       /prescriptions [post]
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	var payload request.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.CreatePrescription(c.Request.Context(), id.UserID, payload.ToCommand())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPrescription(p))
}

// ListPrescriptions godoc
// @Summary      List the caller's prescriptions
// @Tags         prescriptions
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.PrescriptionResponse
// @Router       /prescriptions [get]
func (h *PrescriptionHandler) ListPrescriptions(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	list, err := h.usecase.ListForPatient(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPrescriptions(list))
}

// ListOpenPrescriptions godoc
// @Summary      Pending prescriptions the calling pharmacy has not quoted
// @Tags         prescriptions
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.PrescriptionResponse
// @Router       /prescriptions/open [get]
func (h *PrescriptionHandler) ListOpenPrescriptions(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	list, err := h.usecase.ListOpenForPharmacy(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPrescriptions(list))
}

// GetPrescription godoc
// @Summary      Get a prescription with signed file URLs
// @Tags         prescriptions
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Prescription ID"
// @Success      200 {object} response.PrescriptionResponse
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /prescriptions/{id} [get]
func (h *PrescriptionHandler) GetPrescription(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	view, err := h.usecase.GetPrescription(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPrescriptionView(view))
}
