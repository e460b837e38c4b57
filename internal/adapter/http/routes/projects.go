package routes

import (
	"strconv"

	"boatworks/internal/adapter/http/handlers"
	"boatworks/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathQuotes   = "/quotes"
)

func addProjectRoutes(
	rg *gin.RouterGroup,
	metrics *middleware.Metrics,
	projectHandler *handlers.ProjectHandler,
	configurationHandler *handlers.ConfigurationHandler,
	amendmentHandler *handlers.AmendmentHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.POST("/:id/transition", countTransitions(metrics), projectHandler.TransitionStatus)
		projects.POST("/:id/transition/validate", projectHandler.ValidateTransition)
		projects.POST("/:id/archive", projectHandler.ArchiveProject)
		projects.POST("/:id/unlock", projectHandler.EmergencyUnlock)

		projects.POST("/:id/configuration/items", configurationHandler.AddItem)
		projects.PATCH("/:id/configuration/items/:item_id", configurationHandler.UpdateItem)
		projects.DELETE("/:id/configuration/items/:item_id", configurationHandler.RemoveItem)
		projects.POST("/:id/configuration/items/:item_id/move", configurationHandler.MoveItem)
		projects.PATCH("/:id/configuration", configurationHandler.UpdateConfiguration)
		projects.PATCH("/:id/configuration/discount", configurationHandler.SetDiscount)
		projects.POST("/:id/configuration/freeze", configurationHandler.FreezeConfiguration)
		projects.GET("/:id/configuration/snapshots", configurationHandler.ListSnapshots)

		projects.POST("/:id/amendments", amendmentHandler.CreateAmendment)
		projects.GET("/:id/amendments", amendmentHandler.ListAmendments)

		projects.GET("/:id/bom", projectHandler.ListBOMSnapshots)
		projects.POST("/:id/bom", projectHandler.RegenerateBOM)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuoteByProjectID)
		quotes.PATCH("/total", quoteHandler.UpdateQuoteTotal)
		quotes.PATCH("/send", quoteHandler.SendQuote)
		quotes.PATCH("/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/reject", quoteHandler.RejectQuote)
	}
}

func countTransitions(metrics *middleware.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RecordTransition(strconv.Itoa(c.Writer.Status()))
	}
}
