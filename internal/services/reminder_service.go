package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
)

const defaultReminderTime = "09:00"

// Notifier delivers a reminder to a user. Implementations must not block
// the scheduler for long; delivery errors are logged and swallowed.
type Notifier interface {
	Notify(ctx context.Context, userID uint, title string, body string) error
}

type ReminderUserRepository interface {
	ListAll() ([]models.User, error)
}

type ReminderScheduler struct {
	users    ReminderUserRepository
	habits   HabitRepository
	notifier Notifier
	fallback *time.Location
}

func NewReminderScheduler(users ReminderUserRepository, habits HabitRepository, notifier Notifier, fallback *time.Location) *ReminderScheduler {
	if fallback == nil {
		fallback = time.UTC
	}
	return &ReminderScheduler{
		users:    users,
		habits:   habits,
		notifier: notifier,
		fallback: fallback,
	}
}

// Start runs the minute tick loop until the context is cancelled. The
// database is re-scanned each tick, so habit creates, edits and deletes are
// picked up without any explicit schedule/cancel bookkeeping here.
func (scheduler *ReminderScheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case tick := <-ticker.C:
				scheduler.runTick(ctx, tick)
			}
		}
	}()
}

func (scheduler *ReminderScheduler) runTick(ctx context.Context, now time.Time) {
	users, err := scheduler.users.ListAll()
	if err != nil {
		log.Printf("reminders: list users failed: %v", err)
		return
	}

	for _, user := range users {
		location := scheduler.userLocation(user)
		wallClock := now.In(location).Format("15:04")

		habits, err := scheduler.habits.ListByUser(user.ID)
		if err != nil {
			log.Printf("reminders: list habits for user %d failed: %v", user.ID, err)
			continue
		}

		for _, habit := range habits {
			if !ReminderDueAt(habit, wallClock) {
				continue
			}
			title := fmt.Sprintf("Time for %s!", habit.Title)
			body := fmt.Sprintf("Don't forget to complete your habit. Target: %dx per week", habit.TargetPerWeek)
			if err := scheduler.notifier.Notify(ctx, user.ID, title, body); err != nil {
				log.Printf("reminders: notify user %d habit %s failed: %v", user.ID, habit.ID, err)
			}
		}
	}
}

// ScheduleHabitReminders and CancelHabitReminders are no-ops: the tick loop
// re-reads the habit list, so lifecycle changes take effect on the next
// minute boundary anyway.
func (scheduler *ReminderScheduler) ScheduleHabitReminders(models.Habit) {}

func (scheduler *ReminderScheduler) CancelHabitReminders(string) {}

func (scheduler *ReminderScheduler) userLocation(user models.User) *time.Location {
	location, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return scheduler.fallback
	}
	return location
}

// ReminderDueAt reports whether the habit wants a reminder at the given
// HH:MM wall-clock time. Habits without target times get one daily nudge at
// the default time.
func ReminderDueAt(habit models.Habit, wallClock string) bool {
	if len(habit.TargetTimes) == 0 {
		return wallClock == defaultReminderTime
	}
	for _, target := range habit.TargetTimes {
		if target == wallClock {
			return true
		}
	}
	return false
}

// LogNotifier writes reminders to the process log. It doubles as the dev
// fallback when no push transport is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, userID uint, title string, body string) error {
	log.Printf("reminder for user %d: %s - %s", userID, title, body)
	return nil
}
