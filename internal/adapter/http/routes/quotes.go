package routes

import (
	"rxquote/internal/adapter/http/handlers"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	patientOnly := middleware.RequireRole(entities.RolePatient)
	pharmacyOnly := middleware.RequireRole(entities.RolePharmacy)
	anyRole := middleware.RequireRole(entities.RolePatient, entities.RolePharmacy)

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", pharmacyOnly, quoteHandler.ListQuotes)
		quotes.GET("/:id", anyRole, quoteHandler.GetQuote)
		quotes.PATCH("/:id/accept", patientOnly, quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/reject", patientOnly, quoteHandler.RejectQuote)
		quotes.PATCH("/:id/complete", pharmacyOnly, quoteHandler.CompleteQuote)
	}
}
