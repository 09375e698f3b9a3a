package handlers

import (
	"net/http"

	request "rxquote/internal/adapter/http/dto/request"
	response "rxquote/internal/adapter/http/dto/response"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	usecase usecase.IQuoteLifecycleUseCase
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteLifecycleUseCase, log *zap.Logger) *QuoteHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, log: log}
}

// SubmitQuote godoc
// @Summary      Submit a quote for a prescription
// @Description  Items with an empty drug, empty quantity or a negative price are dropped.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Prescription ID"
// @Param        payload body request.SubmitQuoteRequest true "Quote"
// @Success      201 {object} response.QuoteOutcomeResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /prescriptions/{id}/quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	outcome, err := h.usecase.SubmitQuote(c.Request.Context(), payload.ToCommand(c.Param("id"), id.UserID))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteOutcome(outcome))
}

// ListPrescriptionQuotes godoc
// @Summary      Quotes received by a prescription
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Prescription ID"
// @Success      200 {array} response.QuoteResponse
// @Router       /prescriptions/{id}/quotes [get]
func (h *QuoteHandler) ListPrescriptionQuotes(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	list, err := h.usecase.ListQuotesForPrescription(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(list))
}

// ListQuotes godoc
// @Summary      Quotes submitted by the calling pharmacy
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.QuoteResponse
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	list, err := h.usecase.ListQuotesForPharmacy(c.Request.Context(), id.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(list))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Quote ID"
// @Success      200 {object} response.QuoteResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AcceptQuote godoc
// @Summary      Accept a pending quote
// @Description  Closes the prescription. Other quotes on it can no longer be accepted.
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Quote ID"
// @Success      200 {object} response.QuoteOutcomeResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /quotes/{id}/accept [patch]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.decide(c, entities.DecisionAccept)
}

// RejectQuote godoc
// @Summary      Reject a pending quote
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Quote ID"
// @Success      200 {object} response.QuoteOutcomeResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.decide(c, entities.DecisionReject)
}

func (h *QuoteHandler) decide(c *gin.Context, decision entities.QuoteDecision) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	outcome, err := h.usecase.DecideQuote(c.Request.Context(), c.Param("id"), id.UserID, decision)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteOutcome(outcome))
}

// CompleteQuote godoc
// @Summary      Mark an accepted quote as fulfilled
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Quote ID"
// @Success      200 {object} response.QuoteResponse
// @Failure      403 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /quotes/{id}/complete [patch]
func (h *QuoteHandler) CompleteQuote(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeAppError(c, errNoIdentity)
		return
	}
	q, err := h.usecase.CompleteQuote(c.Request.Context(), c.Param("id"), id.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
