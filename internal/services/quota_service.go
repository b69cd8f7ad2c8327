package services

import (
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
)

type QuotaRepository interface {
	// FindByUser returns the stored quota row; found=false means the user
	// has never used the coach, which callers treat as the zero state.
	FindByUser(userID uint) (models.AIQuota, bool, error)
	Save(state *models.AIQuota) error
}

type CoachQuota struct {
	Allowed bool `json:"allowed"`
	Used    int  `json:"used"`
	Max     int  `json:"max"`
}

type QuotaService struct {
	quotas QuotaRepository
	now    func() time.Time
}

func NewQuotaService(quotas QuotaRepository) *QuotaService {
	return &QuotaService{
		quotas: quotas,
		now:    time.Now,
	}
}

// CanUseCoach applies the daily reset to the stored quota state (persisting
// only when something changed) and compares usage against the plan limit.
// Exceeding the quota is signaled through Allowed, never as an error.
func (service *QuotaService) CanUseCoach(user models.User, location *time.Location) (CoachQuota, error) {
	limits := GetPlanLimits(user.Plan)

	state, found, err := service.quotas.FindByUser(user.ID)
	if err != nil {
		return CoachQuota{}, err
	}
	if !found {
		state = models.AIQuota{UserID: user.ID}
	}

	state, changed := EnsureDailyReset(state, location, service.now(), user.DailyResetHour)
	if changed {
		if err := service.quotas.Save(&state); err != nil {
			return CoachQuota{}, err
		}
	}

	return CoachQuota{
		Allowed: state.UsedToday < limits.AIPerDay,
		Used:    state.UsedToday,
		Max:     limits.AIPerDay,
	}, nil
}

// MarkCoachUsed increments today's usage unconditionally. Gating on
// CanUseCoach first is the caller's responsibility.
func (service *QuotaService) MarkCoachUsed(user models.User, location *time.Location) error {
	state, found, err := service.quotas.FindByUser(user.ID)
	if err != nil {
		return err
	}
	if !found {
		state = models.AIQuota{UserID: user.ID}
	}

	state, _ = EnsureDailyReset(state, location, service.now(), user.DailyResetHour)
	state.UsedToday++
	return service.quotas.Save(&state)
}
