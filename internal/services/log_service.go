package services

import (
	"errors"
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidLogDate = errors.New("log date must be YYYY-MM-DD")
	ErrInvalidMood    = errors.New("unknown mood")
)

// Day-status values of the derived per-day view. The flat log list is the
// single source of truth; this view only reproduces the legacy per-day map
// shape for the client.
const (
	DayStatusDone    = "done"
	DayStatusSkipped = "skipped"
	DayStatusLogged  = "logged"
)

// dayStatusRank orders same-day statuses: a completed log beats a skip,
// which beats a journal-only entry.
var dayStatusRank = map[string]int{
	DayStatusLogged:  0,
	DayStatusSkipped: 1,
	DayStatusDone:    2,
}

type LogRepository interface {
	ListByUser(userID uint) ([]models.HabitLog, error)
	ListByHabit(userID uint, habitID string) ([]models.HabitLog, error)
	ListByUserRange(userID uint, fromDayID string, toDayID string) ([]models.HabitLog, error)
	Create(entry *models.HabitLog) error
}

type LogQuery struct {
	HabitID   string
	FromDayID string
	ToDayID   string
}

type LogService struct {
	logs   LogRepository
	habits HabitRepository
	now    func() time.Time
}

func NewLogService(logs LogRepository, habits HabitRepository) *LogService {
	return &LogService{
		logs:   logs,
		habits: habits,
		now:    time.Now,
	}
}

type AddLogInput struct {
	Note string
	Mood *string
	// Date optionally backdates the log; empty means today in the user's
	// timezone.
	Date string
}

// AddLog appends a log entry. The store stays permissive about duplicate
// same-day logs; HasLoggedToday is the UI-level guard, not an invariant
// enforced here.
func (service *LogService) AddLog(userID uint, habitID string, input AddLogInput, location *time.Location) (models.HabitLog, error) {
	if _, found, err := service.habits.FindByID(userID, habitID); err != nil {
		return models.HabitLog{}, err
	} else if !found {
		return models.HabitLog{}, ErrHabitNotFound
	}

	date := input.Date
	if date == "" {
		date = LocalDayID(location, service.now())
	} else if _, err := ParseDayID(date); err != nil {
		return models.HabitLog{}, ErrInvalidLogDate
	}

	if input.Mood != nil && !models.ValidMood(*input.Mood) {
		return models.HabitLog{}, ErrInvalidMood
	}

	entry := models.HabitLog{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		UserID:    userID,
		Date:      date,
		Note:      input.Note,
		Mood:      input.Mood,
		CreatedAt: service.now(),
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.HabitLog{}, err
	}
	return entry, nil
}

// Query filters the user's logs by habit and/or an inclusive day-id range.
// Logs of deleted habits are filtered out rather than physically removed.
func (service *LogService) Query(userID uint, query LogQuery) ([]models.HabitLog, error) {
	if query.FromDayID != "" {
		if _, err := ParseDayID(query.FromDayID); err != nil {
			return nil, ErrInvalidLogDate
		}
	}
	if query.ToDayID != "" {
		if _, err := ParseDayID(query.ToDayID); err != nil {
			return nil, ErrInvalidLogDate
		}
	}

	var entries []models.HabitLog
	var err error
	if query.HabitID != "" {
		entries, err = service.logs.ListByHabit(userID, query.HabitID)
	} else {
		entries, err = service.logs.ListByUserRange(userID, query.FromDayID, query.ToDayID)
	}
	if err != nil {
		return nil, err
	}

	if query.HabitID != "" && (query.FromDayID != "" || query.ToDayID != "") {
		entries = filterLogsByRange(entries, query.FromDayID, query.ToDayID)
	}
	return entries, nil
}

// HasLoggedToday reports whether any log exists for the habit on today's
// day id in the user's timezone.
func (service *LogService) HasLoggedToday(userID uint, habitID string, location *time.Location) (bool, error) {
	today := LocalDayID(location, service.now())
	entries, err := service.logs.ListByHabit(userID, habitID)
	if err != nil {
		return false, err
	}
	return HasLoggedToday(habitID, entries, today), nil
}

// DayStatusView derives the legacy per-day status map from the flat log
// list: one status per habit for the given day.
func (service *LogService) DayStatusView(userID uint, dayID string) (map[string]string, error) {
	if _, err := ParseDayID(dayID); err != nil {
		return nil, ErrInvalidLogDate
	}
	entries, err := service.logs.ListByUserRange(userID, dayID, dayID)
	if err != nil {
		return nil, err
	}

	view := make(map[string]string, len(entries))
	for _, entry := range entries {
		status := DayStatusLogged
		if entry.Mood != nil {
			if *entry.Mood == models.MoodSkip {
				status = DayStatusSkipped
			} else {
				status = DayStatusDone
			}
		}
		if existing, present := view[entry.HabitID]; !present || dayStatusRank[status] > dayStatusRank[existing] {
			view[entry.HabitID] = status
		}
	}
	return view, nil
}

func filterLogsByRange(entries []models.HabitLog, fromDayID string, toDayID string) []models.HabitLog {
	filtered := make([]models.HabitLog, 0, len(entries))
	for _, entry := range entries {
		if fromDayID != "" && entry.Date < fromDayID {
			continue
		}
		if toDayID != "" && entry.Date > toDayID {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
