package models

import "time"

const (
	MoodGreat = "great"
	MoodOK    = "ok"
	MoodHard  = "hard"
	MoodSkip  = "skip"
)

const (
	DefaultHabitIcon     = "meditation"
	DefaultTargetPerWeek = 5
	MinTargetPerWeek     = 1
	MaxTargetPerWeek     = 7
)

type Habit struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"-"`
	Title         string    `gorm:"not null" json:"title"`
	Icon          string    `gorm:"not null;default:meditation" json:"icon"`
	TargetPerWeek int       `gorm:"not null;default:5" json:"targetPerWeek"`
	TargetTimes   []string  `gorm:"serializer:json" json:"targetTimes"`
	CreatedDayID  string    `gorm:"not null" json:"createdDayId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type HabitLog struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	HabitID   string    `gorm:"not null;index" json:"habitId"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Date      string    `gorm:"not null;index" json:"date"`
	Note      string    `json:"note,omitempty"`
	Mood      *string   `json:"mood,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidMood(mood string) bool {
	switch mood {
	case MoodGreat, MoodOK, MoodHard, MoodSkip:
		return true
	default:
		return false
	}
}
