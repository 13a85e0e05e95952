package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NoBdr07/plateforme-owod/internal/api/handler"
	"github.com/NoBdr07/plateforme-owod/internal/api/middleware"
	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/config"
)

// Deps carries everything the router needs. Services arrive as ports so the
// wiring in cmd stays the only place that knows concrete types.
type Deps struct {
	Config    *config.Config
	Log       zerolog.Logger
	Codec     *auth.Codec
	Evaluator *auth.Evaluator
	Cookies   auth.CookiePolicy

	Auth          ports.AuthService
	Users         ports.UserService
	Designers     ports.DesignerService
	Companies     ports.CompanyService
	Weekly        ports.WeeklyService
	PasswordReset ports.PasswordResetService
	Mailer        ports.Mailer

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("owod"))
	e.Use(middleware.Auth(d.Codec, d.Config.Auth.CookieName, d.Log))

	// --- Guards ---
	authenticated := middleware.Guard(d.Evaluator, auth.Authenticated(), d.Log)
	adminOnly := middleware.Guard(d.Evaluator, auth.RoleRequired(domain.RoleAdmin), d.Log)
	designerOwner := middleware.GuardOwner(d.Evaluator, auth.ResourceDesigner, "id", domain.RoleAdmin, d.Log)
	companyOwner := middleware.GuardOwner(d.Evaluator, auth.ResourceCompany, "id", domain.RoleAdmin, d.Log)
	userSelf := middleware.GuardOwner(d.Evaluator, auth.ResourceUser, "userId", domain.RoleAdmin, d.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Codec, d.Cookies)
	userHandler := handler.NewUserHandler(d.Users)
	designerHandler := handler.NewDesignerHandler(d.Designers)
	companyHandler := handler.NewCompanyHandler(d.Companies)
	weeklyHandler := handler.NewWeeklyHandler(d.Weekly)
	passwordHandler := handler.NewPasswordHandler(d.PasswordReset)
	contactHandler := handler.NewContactHandler(d.Mailer)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// --- Users (always the caller's own account) ---
	users := e.Group("/users", authenticated)
	users.GET("/me", userHandler.Me)
	users.GET("/account-type", userHandler.AccountType)
	users.GET("/friends", userHandler.Friends)
	users.POST("/friends/:designerId", userHandler.AddFriend)
	users.DELETE("/friends/:designerId", userHandler.RemoveFriend)

	// --- Designers ---
	designers := e.Group("/designers")
	designers.GET("/all", designerHandler.All)
	designers.GET("/specialty", designerHandler.BySpecialty)
	designers.GET("/designer/:userId", designerHandler.ByUser)
	designers.GET("/:id", designerHandler.Get)
	designers.POST("/new", designerHandler.Create, authenticated)
	designers.PUT("/:id", designerHandler.Update, designerOwner)
	designers.DELETE("/:id", designerHandler.Delete, designerOwner)
	designers.POST("/:id/picture", designerHandler.UpdatePicture, designerOwner)
	designers.POST("/:id/works", designerHandler.AddWorks, designerOwner)
	designers.DELETE("/:id/works", designerHandler.DeleteWork, designerOwner)
	designers.POST("/events", designerHandler.AddEvent, authenticated)
	designers.PUT("/events", designerHandler.ModifyEvent, authenticated)
	designers.DELETE("/events/:eventId", designerHandler.DeleteEvent, authenticated)

	admin := designers.Group("/admin", adminOnly)
	admin.POST("/new", designerHandler.AdminCreate)
	admin.GET("/created", designerHandler.AdminCreated)
	admin.POST("/transfer/:designerId", designerHandler.AdminTransfer)

	// --- Companies ---
	company := e.Group("/company")
	company.GET("/all", companyHandler.All)
	company.GET("/:id", companyHandler.Get)
	company.GET("/:id/full", companyHandler.GetFull, companyOwner)
	company.GET("/user/:userId", companyHandler.ByUser, userSelf)
	company.POST("/new", companyHandler.Create, authenticated)
	company.PUT("/:id", companyHandler.Update, companyOwner)
	company.DELETE("/:id", companyHandler.Delete, companyOwner)
	company.POST("/:id/logo", companyHandler.UpdateLogo, companyOwner)
	company.POST("/:id/team-photo", companyHandler.UpdateTeamPhoto, companyOwner)
	company.POST("/:id/works", companyHandler.AddWorks, companyOwner)
	company.DELETE("/:id/works", companyHandler.DeleteWork, companyOwner)

	// --- Weekly designer ---
	e.GET("/weekly", weeklyHandler.Current)

	// --- Password reset ---
	e.POST("/password/request-reset", passwordHandler.Request)
	e.POST("/password/reset", passwordHandler.Reset)

	// --- Contact ---
	e.POST("/contact", contactHandler.Send)

	// --- Uploaded images ---
	e.Static("/uploads", d.Config.Uploads.Dir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
