package db

import (
	"github.com/dayzero-app/dayzero/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

// ListByUser returns habits newest first.
func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Habit{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *HabitRepository) FindByID(userID uint, habitID string) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, habitID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

// DeleteByID is a no-op for an absent id, keeping deletion idempotent.
func (repo *HabitRepository) DeleteByID(userID uint, habitID string) error {
	return repo.database.
		Where("user_id = ? AND id = ?", userID, habitID).
		Delete(&models.Habit{}).Error
}
