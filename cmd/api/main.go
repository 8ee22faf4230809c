package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/joshu-sajeev/contactrelay/internal/config"
	"github.com/joshu-sajeev/contactrelay/internal/logging"
	"github.com/joshu-sajeev/contactrelay/internal/mailer"
	"github.com/joshu-sajeev/contactrelay/internal/server"
)

func main() {
	startedAt := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dotEnvLoaded, err := config.LoadDotEnv()
	if err != nil {
		log.Fatal("Failed to read .env:", err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	if !dotEnvLoaded {
		logger.Info("no .env file found, using process environment")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var sender mailer.Sender
	switch cfg.MailDriver {
	case config.MailDriverStub:
		sender = mailer.NewStubSender(logger)
	default:
		sender = mailer.NewSMTPSender(cfg.SMTP, logger)
	}
	if !cfg.SMTP.Configured() {
		logger.Warn("SMTP credentials are not set; contact submissions will fail until SMTP_EMAIL and SMTP_PASSWORD are configured")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := server.NewRouter(cfg, server.Deps{
		Logger:    logger,
		Sender:    sender,
		Registry:  registry,
		StartedAt: startedAt,
	})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	if err := server.New(cfg, router, logger).Run(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
