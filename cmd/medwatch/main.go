package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/arikhalder/medwatch/internal/api"
	"github.com/arikhalder/medwatch/internal/config"
	"github.com/arikhalder/medwatch/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	location := cfg.Location()
	time.Local = location

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("database init failed")
	}

	handler := api.NewHandler(database, cfg.SecretKey, location, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Medwatch",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "medwatch_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
		// Device pushes and the JSON API authenticate with tokens, not
		// browser sessions.
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/device/") || strings.HasPrefix(c.Path(), "/api/")
		},
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logrus.WithError(err).Error("server shutdown failed")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port": cfg.Port,
		"db":   cfg.DatabasePath,
		"tz":   location.String(),
	}).Info("medwatch listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
