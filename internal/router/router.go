package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clubsite/internal/auth"
	"clubsite/internal/config"
	"clubsite/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *auth.SessionManager,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	eventHandler *handler.EventHandler,
	teamHandler *handler.TeamHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Photos land on local disk when no storage bucket is configured; serve
	// them so their URLs stay retrievable.
	if !cfg.UseObjectStorage() {
		e.Static("/uploads", cfg.UploadsDir)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/contact", contactHandler.Submit)
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/team", teamHandler.ListTeam)
	api.GET("/team/featured", teamHandler.ListFeatured)

	// Admin auth routes
	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout)

	// Protected routes (require an active admin session token)
	protected := admin.Group("", auth.RequireSession(sessions))

	protected.GET("/status", authHandler.Status)
	protected.GET("/dashboard", contactHandler.Dashboard)

	protected.GET("/submissions", contactHandler.ListSubmissions)
	protected.DELETE("/submissions/:id", contactHandler.DeleteSubmission)

	protected.POST("/events", eventHandler.CreateEvent)
	protected.PUT("/events/:id", eventHandler.UpdateEvent)
	protected.DELETE("/events/:id", eventHandler.DeleteEvent)

	protected.GET("/team", teamHandler.ListMembers)
	protected.POST("/team", teamHandler.CreateMember)
	protected.PUT("/team/:id", teamHandler.UpdateMember)
	protected.DELETE("/team/:id", teamHandler.DeleteMember)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
