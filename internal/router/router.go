package router

import (
	"github.com/gin-gonic/gin"

	"paperbuddy/internal/handler"
	"paperbuddy/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	healthH *handler.HealthHandler,
	paperH *handler.PaperHandler,
	summaryH *handler.SummaryHandler,
	imageH *handler.IllustrationHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	api := r.Group("/api")

	api.GET("/health", healthH.Health)
	api.GET("/version", healthH.Version)
	api.GET("/info", healthH.Info)

	parse := api.Group("/parse")
	parse.POST("/manual", paperH.ParseManual)
	parse.POST("/pdf", paperH.ParsePDF)
	parse.POST("/url", paperH.ParseURL)

	api.POST("/summarize", summaryH.Summarize)
	api.POST("/generate-images", imageH.GenerateImages)

	return r
}
