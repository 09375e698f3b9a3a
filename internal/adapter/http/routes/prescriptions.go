package routes

import (
	"rxquote/internal/adapter/http/handlers"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPrescriptions = "/prescriptions"
)

func addPrescriptionRoutes(rg *gin.RouterGroup, prescriptionHandler *handlers.PrescriptionHandler, quoteHandler *handlers.QuoteHandler) {
	patientOnly := middleware.RequireRole(entities.RolePatient)
	pharmacyOnly := middleware.RequireRole(entities.RolePharmacy)
	anyRole := middleware.RequireRole(entities.RolePatient, entities.RolePharmacy)

	prescriptions := rg.Group(PathPrescriptions)
	{
		prescriptions.POST("", patientOnly, prescriptionHandler.CreatePrescription)
		prescriptions.GET("", patientOnly, prescriptionHandler.ListPrescriptions)
		prescriptions.GET("/open", pharmacyOnly, prescriptionHandler.ListOpenPrescriptions)
		prescriptions.GET("/:id", anyRole, prescriptionHandler.GetPrescription)

		prescriptions.GET("/:id/quotes", anyRole, quoteHandler.ListPrescriptionQuotes)
		prescriptions.POST("/:id/quotes", pharmacyOnly, quoteHandler.SubmitQuote)
	}
}
