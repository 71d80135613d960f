package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webquote/internal/adapter/http/handlers"
)

const (
	PathQuote       = "/quote"
	PathAdminQuotes = "/admin/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	rg.GET(PathQuote+"/:id", quoteHandler.GetQuote)
	rg.GET(PathAdminQuotes, quoteHandler.ListQuotes)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
