package db

import (
	"github.com/dayzero-app/dayzero/internal/models"
	"gorm.io/gorm"
)

type QuotaRepository struct {
	database *gorm.DB
}

func NewQuotaRepository(database *gorm.DB) *QuotaRepository {
	return &QuotaRepository{database: database}
}

func (repo *QuotaRepository) FindByUser(userID uint) (models.AIQuota, bool, error) {
	state := models.AIQuota{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&state)
	if result.Error != nil {
		return models.AIQuota{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AIQuota{}, false, nil
	}
	return state, true, nil
}

func (repo *QuotaRepository) Save(state *models.AIQuota) error {
	return repo.database.Save(state).Error
}
