package api

import (
	"context"
	"errors"

	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

type askInput struct {
	Prompt string `json:"prompt"`
}

func (handler *Handler) CoachQuota(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	quota, err := handler.quota.CanUseCoach(*user, handler.userLocation(user))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read quota")
	}
	return c.JSON(quota)
}

func (handler *Handler) AskCoach(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := askInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	location := handler.userLocation(user)
	quota, err := handler.quota.CanUseCoach(*user, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read quota")
	}
	if !quota.Allowed {
		return apiError(c, fiber.StatusTooManyRequests, "daily coach quota exhausted")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), handler.coachTimeout)
	defer cancel()

	answer, err := handler.coach.Ask(ctx, input.Prompt)
	if errors.Is(err, services.ErrEmptyPrompt) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to ask coach")
	}

	// Fallback and guardrail answers stay free of quota.
	if answer.Counted {
		if err := handler.quota.MarkCoachUsed(*user, location); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to record usage")
		}
	}

	return c.JSON(answer)
}
