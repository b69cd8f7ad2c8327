package api

import (
	"errors"
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

type habitInput struct {
	Title         string   `json:"title"`
	Icon          string   `json:"icon"`
	TargetPerWeek int      `json:"targetPerWeek"`
	TargetTimes   []string `json:"targetTimes"`
	Date          string   `json:"date"`
}

type habitPatchInput struct {
	Title         *string   `json:"title"`
	Icon          *string   `json:"icon"`
	TargetPerWeek *int      `json:"targetPerWeek"`
	TargetTimes   *[]string `json:"targetTimes"`
}

// HabitSummary is the dashboard card payload: the habit plus its derived
// metrics for the current day and week.
type HabitSummary struct {
	models.Habit
	Streak      int               `json:"streak"`
	Progress    services.Progress `json:"progress"`
	LoggedToday bool              `json:"loggedToday"`
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habits, err := handler.habits.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list habits")
	}

	location := handler.userLocation(user)
	now := time.Now()
	todayID := services.LocalDayID(location, now)

	summaries := make([]HabitSummary, 0, len(habits))
	for _, habit := range habits {
		logs, err := handler.logs.Query(user.ID, services.LogQuery{HabitID: habit.ID})
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load logs")
		}
		summaries = append(summaries, HabitSummary{
			Habit:       habit,
			Streak:      services.CalcStreak(habit, logs, todayID),
			Progress:    services.CalcProgress(habit, logs, now, location),
			LoggedToday: services.HasLoggedToday(habit.ID, logs, todayID),
		})
	}

	return c.JSON(summaries)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	limits := handler.plans.CurrentLimits(user.ID)
	habit, err := handler.habits.Create(user.ID, services.HabitCreateInput{
		Title:         input.Title,
		Icon:          input.Icon,
		TargetPerWeek: input.TargetPerWeek,
		TargetTimes:   input.TargetTimes,
		DayID:         input.Date,
	}, handler.userLocation(user), limits)
	switch {
	case errors.Is(err, services.ErrEmptyTitle),
		errors.Is(err, services.ErrInvalidTargetTime),
		errors.Is(err, services.ErrInvalidCreationDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrHabitLimitReached):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := habitPatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habits.Update(user.ID, c.Params("id"), services.HabitPatch{
		Title:         input.Title,
		Icon:          input.Icon,
		TargetPerWeek: input.TargetPerWeek,
		TargetTimes:   input.TargetTimes,
	})
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrInvalidTargetTime):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update habit")
	}

	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.habits.Delete(user.ID, c.Params("id")); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
