package routes

import (
	"unimarket/internal/adapter/http/handlers"
	"unimarket/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathQuotationSessions = "/quotations/sessions"

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	sessions := rg.Group(PathQuotationSessions)
	{
		sessions.POST("", quotationHandler.OpenSession)
		sessions.GET("/:session_id", quotationHandler.GetSession)
		sessions.PUT("/:session_id/draft", quotationHandler.UpdateDraft)
		// Submission fans out to the external order-service.
		sessions.POST("/:session_id/submit", middleware.RateLimitStrict(), quotationHandler.Submit)
		sessions.DELETE("/:session_id", quotationHandler.AbandonSession)
	}
}
