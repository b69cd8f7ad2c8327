package models

import "time"

const (
	PlanFree     = "free"
	PlanTrial    = "trial"
	PlanPremium  = "premium"
	PlanLifetime = "lifetime"
)

const (
	DefaultTimezone       = "UTC"
	DefaultDailyResetHour = 20
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	DisplayName    string    `json:"displayName"`
	Timezone       string    `gorm:"not null;default:UTC" json:"timezone"`
	DailyResetHour int       `gorm:"not null;default:20" json:"dailyResetHourLocal"`
	Plan           string    `gorm:"not null;default:free" json:"plan"`
	PlanFetchedAt  time.Time `json:"planFetchedAt"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ValidPlan(plan string) bool {
	switch plan {
	case PlanFree, PlanTrial, PlanPremium, PlanLifetime:
		return true
	default:
		return false
	}
}
