package api

import (
	"errors"

	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

type logInput struct {
	Note string  `json:"note"`
	Mood *string `json:"mood"`
	Date string  `json:"date"`
}

func (handler *Handler) AddHabitLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := logInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.logs.AddLog(user.ID, c.Params("id"), services.AddLogInput{
		Note: input.Note,
		Mood: input.Mood,
		Date: input.Date,
	}, handler.userLocation(user))
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidLogDate), errors.Is(err, services.ErrInvalidMood):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to add log")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) QueryLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.logs.Query(user.ID, services.LogQuery{
		HabitID:   c.Query("habit"),
		FromDayID: c.Query("from"),
		ToDayID:   c.Query("to"),
	})
	switch {
	case errors.Is(err, services.ErrInvalidLogDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to query logs")
	}

	return c.JSON(entries)
}

func (handler *Handler) DayStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	view, err := handler.logs.DayStatusView(user.ID, c.Params("date"))
	switch {
	case errors.Is(err, services.ErrInvalidLogDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to build day view")
	}

	return c.JSON(view)
}
