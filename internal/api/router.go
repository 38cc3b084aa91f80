package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/doramarin/wedding-rsvp/docs"
	"github.com/doramarin/wedding-rsvp/internal/api/handler"
	"github.com/doramarin/wedding-rsvp/internal/api/middleware"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

// Deps carries everything the router needs to build handlers.
type Deps struct {
	Auth     ports.AuthService
	Accounts ports.AccountService
	Persons  ports.PersonService
	RSVP     ports.RSVPService
	Comments ports.CommentService
	Activity ports.ActivityService

	Sessions  middleware.SessionChecker
	JWTSecret string
	// Health maps dependency names to readiness probes.
	Health         map[string]handler.PingFunc
	RequestTimeout time.Duration
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// It registers HTTP metrics with the default Prometheus registry and must
// only be called once per process.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("wedding"))
	if d.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeout(d.RequestTimeout))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	accountHandler := handler.NewAccountHandler(d.Accounts)
	personHandler := handler.NewPersonHandler(d.Persons)
	responseHandler := handler.NewResponseHandler(d.RSVP)
	commentHandler := handler.NewCommentHandler(d.Comments)
	activityHandler := handler.NewActivityHandler(d.Activity)

	guest := middleware.RequireGuest()
	admin := middleware.RequireAdmin()

	// --- Public ---
	e.POST("/api/login", authHandler.Login)

	// --- Authenticated ---
	g := e.Group("/api", middleware.Auth(d.JWTSecret, d.Sessions))
	g.POST("/logout", authHandler.Logout)

	g.GET("/users", accountHandler.List, admin)
	g.POST("/users", accountHandler.Create, admin)
	g.GET("/users/:username", accountHandler.Get)
	g.PUT("/users/:username", accountHandler.Update, admin)
	g.DELETE("/users/:username", accountHandler.Delete, admin)

	g.GET("/name_surnames/:username", personHandler.ListForAccount)
	g.GET("/namesurnames", personHandler.ListAll, admin)
	g.POST("/namesurnames", personHandler.Add)
	g.DELETE("/namesurnames/:name_surname", personHandler.Delete, admin)

	g.GET("/guest/view", responseHandler.View, guest)
	g.GET("/form_responses", responseHandler.List)
	g.GET("/form_responses/:username", responseHandler.ListForAccount)
	g.POST("/form_responses", responseHandler.Submit, guest)
	g.POST("/form_responses/batch", responseHandler.SubmitBatch, guest)

	g.POST("/comments", commentHandler.Add, guest)
	g.GET("/comments", commentHandler.ListAll, admin)
	g.GET("/comments/:username", commentHandler.ListForAccount)

	g.GET("/admin/summary", responseHandler.Summary, admin)
	g.GET("/activity", activityHandler.List, admin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
