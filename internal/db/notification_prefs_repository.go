package db

import (
	"github.com/dayzero-app/dayzero/internal/models"
	"gorm.io/gorm"
)

type NotificationPrefsRepository struct {
	database *gorm.DB
}

func NewNotificationPrefsRepository(database *gorm.DB) *NotificationPrefsRepository {
	return &NotificationPrefsRepository{database: database}
}

// FindByUser falls back to the defaults when no row exists yet, so missing
// preferences never surface as an error on read paths.
func (repo *NotificationPrefsRepository) FindByUser(userID uint) (models.NotificationPrefs, error) {
	prefs := models.NotificationPrefs{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&prefs)
	if result.Error != nil {
		return models.NotificationPrefs{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DefaultNotificationPrefs(userID), nil
	}
	return prefs, nil
}

func (repo *NotificationPrefsRepository) Save(prefs *models.NotificationPrefs) error {
	return repo.database.Save(prefs).Error
}

func (repo *NotificationPrefsRepository) ListPushTokens(userID uint) ([]string, error) {
	prefs, err := repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return prefs.PushTokens, nil
}
