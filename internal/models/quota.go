package models

// AIQuota tracks coach usage since the last daily reset. LastResetDayID is
// empty until the first reset has happened.
type AIQuota struct {
	UserID         uint   `gorm:"primaryKey" json:"-"`
	UsedToday      int    `gorm:"not null;default:0" json:"usedToday"`
	LastResetDayID string `gorm:"not null;default:''" json:"lastResetLocalDayId"`
}

func (AIQuota) TableName() string {
	return "ai_quota"
}
