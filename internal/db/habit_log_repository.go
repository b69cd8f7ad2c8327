package db

import (
	"github.com/dayzero-app/dayzero/internal/models"
	"gorm.io/gorm"
)

type HabitLogRepository struct {
	database *gorm.DB
}

func NewHabitLogRepository(database *gorm.DB) *HabitLogRepository {
	return &HabitLogRepository{database: database}
}

// Queries join against habits so logs of deleted habits fall out of view
// without being physically removed.
func (repo *HabitLogRepository) ListByUser(userID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.visibleLogs(userID).
		Order("habit_logs.date ASC, habit_logs.created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByHabit(userID uint, habitID string) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.visibleLogs(userID).
		Where("habit_logs.habit_id = ?", habitID).
		Order("habit_logs.date ASC, habit_logs.created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByUserRange(userID uint, fromDayID string, toDayID string) ([]models.HabitLog, error) {
	query := repo.visibleLogs(userID)
	if fromDayID != "" {
		query = query.Where("habit_logs.date >= ?", fromDayID)
	}
	if toDayID != "" {
		query = query.Where("habit_logs.date <= ?", toDayID)
	}

	logs := make([]models.HabitLog, 0)
	if err := query.
		Order("habit_logs.date ASC, habit_logs.created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) Create(entry *models.HabitLog) error {
	return repo.database.Create(entry).Error
}

func (repo *HabitLogRepository) visibleLogs(userID uint) *gorm.DB {
	return repo.database.Model(&models.HabitLog{}).
		Joins("JOIN habits ON habits.id = habit_logs.habit_id").
		Where("habit_logs.user_id = ?", userID)
}
