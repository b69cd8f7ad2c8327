package api

import (
	"time"

	"github.com/dayzero-app/dayzero/internal/db"
	"github.com/dayzero-app/dayzero/internal/services"
)

type Handler struct {
	repos        *db.Repositories
	auth         *services.AuthService
	habits       *services.HabitService
	logs         *services.LogService
	quota        *services.QuotaService
	coach        *services.CoachService
	plans        *services.PlanService
	secretKey    []byte
	location     *time.Location
	coachTimeout time.Duration
}

type Options struct {
	SecretKey []byte
	// Location is the server-side fallback when a user's stored timezone
	// cannot be resolved.
	Location     *time.Location
	CoachBackend services.CoachBackend
	PlanSource   services.PlanSource
	Reminders    services.HabitReminderScheduler
	CoachTimeout time.Duration
}

func NewHandler(repos *db.Repositories, options Options) *Handler {
	location := options.Location
	if location == nil {
		location = time.UTC
	}
	coachTimeout := options.CoachTimeout
	if coachTimeout <= 0 {
		coachTimeout = 20 * time.Second
	}

	return &Handler{
		repos:        repos,
		auth:         services.NewAuthService(repos.Users),
		habits:       services.NewHabitService(repos.Habits, options.Reminders),
		logs:         services.NewLogService(repos.HabitLogs, repos.Habits),
		quota:        services.NewQuotaService(repos.Quotas),
		coach:        services.NewCoachService(options.CoachBackend),
		plans:        services.NewPlanService(repos.Users, options.PlanSource),
		secretKey:    options.SecretKey,
		location:     location,
		coachTimeout: coachTimeout,
	}
}
