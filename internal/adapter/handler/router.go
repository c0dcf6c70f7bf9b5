package handler

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sunilghanchi/mom-generator/pkg/config"
)

//go:embed web
var webFS embed.FS

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	minutesController *MinutesController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, minutesController *MinutesController) *Router {
	return &Router{
		cfg:               cfg,
		minutesController: minutesController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Upload page
	e.GET("/", rt.index)

	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	v1.POST("/minutes", rt.minutesController.Generate)
}

// index serves the embedded upload page
func (rt *Router) index(c echo.Context) error {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.HTMLBlob(http.StatusOK, page)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}
