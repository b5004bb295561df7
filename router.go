package main

import (
	"net/http"

	"simplenotes/config"
	"simplenotes/handler"
	"simplenotes/middleware"
	"simplenotes/usecase"
	"simplenotes/utils"

	"github.com/gin-gonic/gin"
)

func setupRouter(cfg config.ServerConfig, notesService *usecase.NotesService) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Logger())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSMaxAge))
	if cfg.MetricsEnabled {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RequestSizeLimiter(cfg.MaxBodyBytes))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, &utils.ErrorResponse{Detail: http.StatusText(http.StatusNotFound)})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, &utils.ErrorResponse{Detail: http.StatusText(http.StatusMethodNotAllowed)})
	})

	// Health endpoints; the root path is kept for older clients
	router.GET("/", handler.HealthCheckHandler)
	router.GET("/health", handler.HealthCheckHandler)
	router.GET("/openapi.json", handler.OpenAPIHandler)

	if cfg.MetricsEnabled {
		router.GET(cfg.MetricsPath, middleware.MetricsHandler())
	}

	notesHandler := handler.NewNoteHandler(notesService)
	notes := router.Group("/notes")
	notes.Use(middleware.NoStoreMiddleware())
	{
		notes.GET("", notesHandler.ListNotes)
		notes.POST("", notesHandler.CreateNote)
		notes.GET("/:id", notesHandler.GetNote)
		notes.PUT("/:id", notesHandler.UpdateNote)
		notes.DELETE("/:id", notesHandler.DeleteNote)
	}

	return router
}
