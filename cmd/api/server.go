package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rxquote/internal/adapter/http/handlers"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/internal/adapter/http/routes"
	"rxquote/internal/config"
	"rxquote/internal/infrastructure/database"
	"rxquote/internal/infrastructure/mail"
	"rxquote/internal/infrastructure/pdf"
	"rxquote/internal/infrastructure/storage"
	"rxquote/internal/usecase"
	"rxquote/pkg/logger"
	"rxquote/pkg/metrics"
	"rxquote/pkg/tracer"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func runServer(ctx context.Context, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracer.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	m := metrics.NewCollector(cfg.App.Name, prometheus.DefaultRegisterer)

	st, err := openStores(ctx, cfg, log, migrate)
	if err != nil {
		log.Error("opening store failed", zap.String("driver", cfg.Store.Driver), zap.Error(err))
		return err
	}
	defer st.close()

	awsCfg, err := database.NewAWSConfig(ctx, cfg.Storage.Region, cfg.DynamoDB.AccessKeyID, cfg.DynamoDB.SecretAccessKey)
	if err != nil {
		return err
	}
	signer := storage.NewS3Signer(awsCfg, cfg.Storage)

	outbox := mail.NewOutbox(mail.NewSMTPMailer(cfg.Mail), cfg.Mail, log.Named("outbox"), m)
	outbox.Start()

	dispatcher := usecase.NewNotificationDispatcher(outbox, pdf.NewQuoteRenderer(), mail.NewTemplateRenderer(), log.Named("notifications"), m)
	lifecycle := usecase.NewQuoteLifecycleUseCase(st.prescriptions, st.quotes, st.profiles, dispatcher, cfg.App.Origin, log.Named("quotes"), m)
	prescriptions := usecase.NewPrescriptionUseCase(st.prescriptions, st.quotes, signer, cfg.Storage.SignedURLTTL, log.Named("prescriptions"))

	router := routes.NewRouter(routes.Dependencies{
		Log:                 log,
		Metrics:             m,
		Verifier:            middleware.NewTokenVerifier(cfg.Auth),
		EmailLimiter:        middleware.NewIPRateLimiter(cfg.RateLimit),
		PrescriptionHandler: handlers.NewPrescriptionHandler(prescriptions, log),
		QuoteHandler:        handlers.NewQuoteHandler(lifecycle, log),
		EmailHandler:        handlers.NewEmailHandler(dispatcher, cfg.App.Origin, log),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", zap.Error(err))
			_ = outbox.Shutdown(context.Background())
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
	if err := outbox.Shutdown(shutdownCtx); err != nil {
		log.Warn("mail outbox did not drain", zap.Error(err))
	}
	log.Info("server stopped")
	return nil
}

func runMigrate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	st, err := openStores(ctx, cfg, log, true)
	if err != nil {
		log.Error("migration failed", zap.String("driver", cfg.Store.Driver), zap.Error(err))
		return err
	}
	st.close()
	log.Info("migration finished", zap.String("driver", cfg.Store.Driver))
	return nil
}
