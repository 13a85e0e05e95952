package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/NoBdr07/plateforme-owod/internal/api"
	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/service"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/config"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/db/mongo"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/db/redis"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/mail"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/scheduler"
	"github.com/NoBdr07/plateforme-owod/internal/infrastructure/storage"
	"github.com/NoBdr07/plateforme-owod/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	images, err := storage.NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}
	mailer := mail.NewSMTPMailer(
		cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Username, cfg.SMTP.Password,
		cfg.SMTP.From, cfg.SMTP.ContactTo,
	)

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	designerRepo := mongo.NewDesignerRepository(db)
	companyRepo := mongo.NewCompanyRepository(db)
	weeklyRepo := mongo.NewWeeklyRepository(db)
	resetTokens := redis.NewResetTokenStore(rdb)

	// --- Auth core ---
	codec := auth.NewCodec([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	evaluator := auth.NewEvaluator(service.NewOwnershipStore(userRepo))
	cookies := auth.CookiePolicy{
		Name:      cfg.Auth.CookieName,
		Secure:    cfg.Auth.CookieSecure,
		CrossSite: cfg.Auth.CookieCrossSite,
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, codec)
	userService := service.NewUserService(userRepo, designerRepo)
	designerService := service.NewDesignerService(designerRepo, userRepo, images, log)
	companyService := service.NewCompanyService(companyRepo, userRepo, images, log)
	weeklyService := service.NewWeeklyService(weeklyRepo, designerRepo, log)
	resetService := service.NewPasswordResetService(userRepo, resetTokens, mailer, cfg.FrontendURL, log)

	// --- Background jobs ---
	jobs, err := scheduler.New(weeklyService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler init failed")
	}
	jobs.Start()
	defer jobs.Stop()

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Config:        cfg,
		Log:           log,
		Codec:         codec,
		Evaluator:     evaluator,
		Cookies:       cookies,
		Auth:          authService,
		Users:         userService,
		Designers:     designerService,
		Companies:     companyService,
		Weekly:        weeklyService,
		PasswordReset: resetService,
		Mailer:        mailer,
		Mongo:         db,
		Redis:         rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
