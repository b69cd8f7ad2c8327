package models

type NotificationPrefs struct {
	UserID           uint     `gorm:"primaryKey" json:"-"`
	CheckInEnabled   bool     `gorm:"not null;default:true" json:"checkInEnabled"`
	CheckInTimeLocal string   `gorm:"not null;default:'08:00'" json:"checkInTimeLocal"`
	ReflectEnabled   bool     `gorm:"not null;default:true" json:"reflectEnabled"`
	ReflectTimeLocal string   `gorm:"not null;default:'20:00'" json:"reflectTimeLocal"`
	PushTokens       []string `gorm:"serializer:json" json:"pushTokens"`
}

func (NotificationPrefs) TableName() string {
	return "notification_prefs"
}

func DefaultNotificationPrefs(userID uint) NotificationPrefs {
	return NotificationPrefs{
		UserID:           userID,
		CheckInEnabled:   true,
		CheckInTimeLocal: "08:00",
		ReflectEnabled:   true,
		ReflectTimeLocal: "20:00",
		PushTokens:       []string{},
	}
}
