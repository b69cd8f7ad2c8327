package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Habits    *HabitRepository
	HabitLogs *HabitLogRepository
	Quotas    *QuotaRepository
	Prefs     *NotificationPrefsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Habits:    NewHabitRepository(database),
		HabitLogs: NewHabitLogRepository(database),
		Quotas:    NewQuotaRepository(database),
		Prefs:     NewNotificationPrefsRepository(database),
	}
}
