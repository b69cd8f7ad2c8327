package services

import (
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
)

// The metrics engine is pure: every function here computes over an in-memory
// snapshot of habits and logs and never touches storage or the clock.

type Progress struct {
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// IsCompletedLog reports whether a log counts toward streaks and weekly
// targets. A log without a mood, or with mood "skip", is a journal entry
// only.
func IsCompletedLog(log models.HabitLog) bool {
	return log.Mood != nil && *log.Mood != models.MoodSkip
}

// WeekWindow returns the Sunday..Saturday day-id bounds of the week
// containing now in the given location.
func WeekWindow(now time.Time, location *time.Location) (string, string) {
	if location == nil {
		location = time.UTC
	}
	localized := now.In(location)
	year, month, day := localized.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int(localized.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart.Format(dayIDLayout), weekEnd.Format(dayIDLayout)
}

// WithinWeek reports whether the day id falls inside the Sunday..Saturday
// window containing now in the user's location. Day ids compare
// lexicographically.
func WithinWeek(dayID string, now time.Time, location *time.Location) bool {
	if _, err := ParseDayID(dayID); err != nil {
		return false
	}
	weekStart, weekEnd := WeekWindow(now, location)
	return dayID >= weekStart && dayID <= weekEnd
}

// CalcProgress counts this week's completed logs for the habit and derives
// the progress fraction against the weekly target. Pct is always in [0, 1].
func CalcProgress(habit models.Habit, logs []models.HabitLog, now time.Time, location *time.Location) Progress {
	count := WeekCompletions(habit.ID, logs, now, location)
	target := habit.TargetPerWeek
	if target < 1 {
		target = 1
	}
	pct := float64(count) / float64(target)
	if pct > 1 {
		pct = 1
	}
	return Progress{Count: count, Pct: pct}
}

// WeekCompletions counts completed logs for the habit within the current
// Sunday..Saturday window.
func WeekCompletions(habitID string, logs []models.HabitLog, now time.Time, location *time.Location) int {
	count := 0
	for _, entry := range logs {
		if entry.HabitID != habitID || !IsCompletedLog(entry) {
			continue
		}
		if WithinWeek(entry.Date, now, location) {
			count++
		}
	}
	return count
}

// CalcStreak counts consecutive day ids with at least one completed log,
// ending at todayID and walking backward. A habit with no completed log
// today has streak 0, whatever came before.
func CalcStreak(habit models.Habit, logs []models.HabitLog, todayID string) int {
	completedDays := make(map[string]bool)
	for _, entry := range logs {
		if entry.HabitID == habit.ID && IsCompletedLog(entry) {
			completedDays[entry.Date] = true
		}
	}

	streak := 0
	for day := todayID; completedDays[day]; day = PreviousDayID(day) {
		streak++
	}
	return streak
}

// HasLoggedToday reports whether any log (completed or not) exists for the
// habit on the given day id.
func HasLoggedToday(habitID string, logs []models.HabitLog, todayID string) bool {
	for _, entry := range logs {
		if entry.HabitID == habitID && entry.Date == todayID {
			return true
		}
	}
	return false
}
