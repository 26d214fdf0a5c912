package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdesk/config"
	_ "eventdesk/docs"
	"eventdesk/internal/adapters/auth"
	"eventdesk/internal/adapters/email"
	"eventdesk/internal/adapters/lock"
	httpdelivery "eventdesk/internal/delivery/http"
	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/domain"
	"eventdesk/internal/metrics"
	"eventdesk/internal/repository/postgres"
	"eventdesk/internal/services"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
)

// @title EventDesk Scheduling API
// @version 1.0
// @description Session scheduling for the event dashboard: venue conflict detection, capacity validation and the timeline view.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(db); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	guard, closeGuard, err := newGuard(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGuard()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipTLS,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	sessionService := services.NewSessionService(
		postgres.NewSessionRepository(db),
		postgres.NewEventRepository(db),
		postgres.NewSpeakerRepository(db),
		guard,
		services.NewEmailNotifier(mailer, renderer, logger),
		m,
		logger,
		cfg.RequestTimeout,
	)
	sessionController := controllers.NewSessionController(logger, sessionService)
	router := httpdelivery.NewRouter(sessionController, auth.NewJWTVerifier(cfg.JWTSecret), reg, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.NewHandler(router, logger, m, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "guard", cfg.ScheduleGuard)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newGuard(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.CommitGuard, func(), error) {
	if cfg.ScheduleGuard != "redis" {
		return lock.NoopGuard{}, func() {}, nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := lock.NewRedisClient(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("schedule guard enabled", "backend", "redis", "ttl", cfg.ScheduleGuardTTL)
	return lock.NewRedisGuard(client, lock.RedisOptions{TTL: cfg.ScheduleGuardTTL}), func() { _ = client.Close() }, nil
}
