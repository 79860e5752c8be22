package router

import (
	"github.com/gin-gonic/gin"

	"docbiz/internal/handler"
	"docbiz/internal/metrics"
	"docbiz/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	m *metrics.Metrics,
	extractH *handler.ExtractHandler,
	documentH *handler.DocumentHandler,
	exportH *handler.ExportHandler,
	settingsH *handler.SettingsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.Observe(m))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Metrics
	r.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := r.Group("/api/v1")

	// Extraction pipeline
	v1.POST("/extract", extractH.Extract)

	// Documents and their entities
	docs := v1.Group("/documents")
	docs.GET("", documentH.List)
	docs.DELETE("", documentH.ClearAll)
	docs.DELETE("/:id", documentH.Delete)

	docs.POST("/:id/clients", documentH.AddClient)
	docs.PUT("/:id/clients/:entityId", documentH.UpdateClient)
	docs.DELETE("/:id/clients/:entityId", documentH.DeleteClient)

	docs.POST("/:id/companies", documentH.AddCompany)
	docs.PUT("/:id/companies/:entityId", documentH.UpdateCompany)
	docs.DELETE("/:id/companies/:entityId", documentH.DeleteCompany)

	docs.POST("/:id/properties", documentH.AddProperty)
	docs.PUT("/:id/properties/:entityId", documentH.UpdateProperty)
	docs.DELETE("/:id/properties/:entityId", documentH.DeleteProperty)

	// Exports
	export := v1.Group("/export")
	export.GET("/txt", exportH.Text)
	export.GET("/xlsx", exportH.XLSX)
	export.GET("/json", exportH.JSON)

	// Settings
	settings := v1.Group("/settings")
	settings.GET("/theme", settingsH.GetTheme)
	settings.PUT("/theme", settingsH.SetTheme)
	settings.PUT("/api-key", settingsH.SetAPIKey)

	return r
}
