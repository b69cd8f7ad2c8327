package services

import "github.com/dayzero-app/dayzero/internal/models"

// Unlimited marks a plan limit with no ceiling.
const Unlimited = -1

type PlanLimits struct {
	MaxHabits int `json:"maxHabits"`
	MaxGoals  int `json:"maxGoals"`
	AIPerDay  int `json:"aiPerDay"`
}

// GetPlanLimits maps a plan tier to its limits. Trial counts as
// premium-equivalent. Anything unknown (including an empty cached tier)
// degrades to free so an offline client still works.
func GetPlanLimits(plan string) PlanLimits {
	switch plan {
	case models.PlanPremium, models.PlanLifetime, models.PlanTrial:
		return PlanLimits{MaxHabits: Unlimited, MaxGoals: Unlimited, AIPerDay: 3}
	default:
		return PlanLimits{MaxHabits: 1, MaxGoals: 1, AIPerDay: 1}
	}
}

// WithinHabitLimit reports whether a user holding current habits may create
// one more.
func WithinHabitLimit(limits PlanLimits, current int) bool {
	return limits.MaxHabits == Unlimited || current < limits.MaxHabits
}

// WithinGoalLimit reports whether a user holding current goals may create
// one more.
func WithinGoalLimit(limits PlanLimits, current int) bool {
	return limits.MaxGoals == Unlimited || current < limits.MaxGoals
}
