package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayzero-app/dayzero/internal/api"
	"github.com/dayzero-app/dayzero/internal/config"
	"github.com/dayzero-app/dayzero/internal/db"
	"github.com/dayzero-app/dayzero/internal/security"
	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	secretKey := cfg.SecretKey
	if secretKey == "" {
		generated, err := security.GenerateSecretKey(48)
		if err != nil {
			log.Fatalf("secret key generation failed: %v", err)
		}
		secretKey = generated
		log.Print("SECRET_KEY not set, using a generated key; sessions will not survive restarts")
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repos := db.NewRepositories(database)

	var coachBackend services.CoachBackend
	if cfg.CoachURL != "" {
		coachBackend = services.NewHTTPCoachBackend(cfg.CoachURL, cfg.CoachSecret)
	}
	var planSource services.PlanSource
	if cfg.PlanSyncURL != "" {
		planSource = services.NewHTTPPlanSource(cfg.PlanSyncURL, cfg.CoachSecret)
	}

	var notifier services.Notifier = services.LogNotifier{}
	if cfg.RemindersOn {
		notifier = services.NewExpoPushNotifier(repos.Prefs)
	}
	reminders := services.NewReminderScheduler(repos.Users, repos.Habits, notifier, location)

	handler := api.NewHandler(repos, api.Options{
		SecretKey:    []byte(secretKey),
		Location:     location,
		CoachBackend: coachBackend,
		PlanSource:   planSource,
		Reminders:    reminders,
		CoachTimeout: time.Duration(cfg.CoachTimeoutSec) * time.Second,
	})

	app := fiber.New(fiber.Config{
		AppName:               "DayZero",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	if cfg.RemindersOn {
		reminders.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("DayZero listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
