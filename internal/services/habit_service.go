package services

import (
	"errors"
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("habit title must not be empty")
	ErrInvalidTargetTime   = errors.New("target time must be HH:MM")
	ErrInvalidCreationDate = errors.New("creation date must be YYYY-MM-DD")
	ErrHabitNotFound       = errors.New("habit not found")
	ErrHabitLimitReached   = errors.New("habit limit reached for plan")
)

type HabitRepository interface {
	ListByUser(userID uint) ([]models.Habit, error)
	CountByUser(userID uint) (int64, error)
	FindByID(userID uint, habitID string) (models.Habit, bool, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	DeleteByID(userID uint, habitID string) error
}

// HabitReminderScheduler is the narrow contract into the notification
// collaborator. Calls are fire and forget; scheduling failures never reach
// the habit lifecycle.
type HabitReminderScheduler interface {
	ScheduleHabitReminders(habit models.Habit)
	CancelHabitReminders(habitID string)
}

type HabitCreateInput struct {
	Title         string
	Icon          string
	TargetPerWeek int
	TargetTimes   []string
	// DayID optionally pins the creation day; when empty it is resolved
	// from the user's timezone at call time.
	DayID string
}

type HabitPatch struct {
	Title         *string
	Icon          *string
	TargetPerWeek *int
	TargetTimes   *[]string
}

type HabitService struct {
	habits    HabitRepository
	reminders HabitReminderScheduler
	now       func() time.Time
}

func NewHabitService(habits HabitRepository, reminders HabitReminderScheduler) *HabitService {
	return &HabitService{
		habits:    habits,
		reminders: reminders,
		now:       time.Now,
	}
}

func (service *HabitService) Create(userID uint, input HabitCreateInput, location *time.Location, limits PlanLimits) (models.Habit, error) {
	title := NormalizeHabitTitle(input.Title)
	if title == "" {
		return models.Habit{}, ErrEmptyTitle
	}

	targetTimes, ok := NormalizeTargetTimes(input.TargetTimes)
	if !ok {
		return models.Habit{}, ErrInvalidTargetTime
	}

	if input.DayID != "" {
		if _, err := ParseDayID(input.DayID); err != nil {
			return models.Habit{}, ErrInvalidCreationDate
		}
	}

	existing, err := service.habits.CountByUser(userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !WithinHabitLimit(limits, int(existing)) {
		return models.Habit{}, ErrHabitLimitReached
	}

	now := service.now()
	dayID := input.DayID
	if dayID == "" {
		dayID = LocalDayID(location, now)
	}

	habit := models.Habit{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         title,
		Icon:          NormalizeHabitIcon(input.Icon),
		TargetPerWeek: ClampTargetPerWeek(input.TargetPerWeek),
		TargetTimes:   targetTimes,
		CreatedDayID:  dayID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}

	if service.reminders != nil {
		service.reminders.ScheduleHabitReminders(habit)
	}
	return habit, nil
}

// Update applies the patch to the mutable fields only. Identity fields and
// CreatedDayID are never touched, even if the user's timezone has changed
// since creation.
func (service *HabitService) Update(userID uint, habitID string, patch HabitPatch) (models.Habit, error) {
	habit, found, err := service.habits.FindByID(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}

	if patch.Title != nil {
		title := NormalizeHabitTitle(*patch.Title)
		if title == "" {
			return models.Habit{}, ErrEmptyTitle
		}
		habit.Title = title
	}
	if patch.Icon != nil {
		habit.Icon = NormalizeHabitIcon(*patch.Icon)
	}
	if patch.TargetPerWeek != nil {
		habit.TargetPerWeek = ClampTargetPerWeek(*patch.TargetPerWeek)
	}
	if patch.TargetTimes != nil {
		targetTimes, ok := NormalizeTargetTimes(*patch.TargetTimes)
		if !ok {
			return models.Habit{}, ErrInvalidTargetTime
		}
		habit.TargetTimes = targetTimes
	}

	habit.UpdatedAt = service.now()
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, err
	}

	if service.reminders != nil {
		service.reminders.ScheduleHabitReminders(habit)
	}
	return habit, nil
}

// Delete is idempotent: removing an absent habit is a no-op, not an error.
func (service *HabitService) Delete(userID uint, habitID string) error {
	if err := service.habits.DeleteByID(userID, habitID); err != nil {
		return err
	}
	if service.reminders != nil {
		service.reminders.CancelHabitReminders(habitID)
	}
	return nil
}

// List returns the user's habits newest first.
func (service *HabitService) List(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) Find(userID uint, habitID string) (models.Habit, error) {
	habit, found, err := service.habits.FindByID(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}
