package routes

import (
	"rxquote/internal/adapter/http/handlers"
	"rxquote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotationEmail       = "/quotation-email"
	PathQuotationStatusEmail = "/quotation-status-email"
)

func addEmailRoutes(rg *gin.RouterGroup, emailHandler *handlers.EmailHandler, limiter *middleware.IPRateLimiter) {
	var chain []gin.HandlerFunc
	if limiter != nil {
		chain = append(chain, middleware.RateLimit(limiter))
	}
	rg.POST(PathQuotationEmail, append(chain, emailHandler.SendQuotationEmail)...)
	rg.POST(PathQuotationStatusEmail, append(chain, emailHandler.SendQuotationStatusEmail)...)
}
