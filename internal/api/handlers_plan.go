package api

import (
	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

type planView struct {
	Plan   string              `json:"plan"`
	Limits services.PlanLimits `json:"limits"`
	Stale  bool                `json:"stale,omitempty"`
}

func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(planView{
		Plan:   user.Plan,
		Limits: services.GetPlanLimits(user.Plan),
	})
}

// RefreshPlan re-syncs the entitlement tier from the account backend. When
// the backend is unreachable the cached tier is served marked stale instead
// of failing the request.
func (handler *Handler) RefreshPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, err := handler.plans.RefreshPlan(c.UserContext(), user.ID)
	return c.JSON(planView{
		Plan:   plan,
		Limits: services.GetPlanLimits(plan),
		Stale:  err != nil,
	})
}
