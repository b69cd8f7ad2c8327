package api

import (
	"strings"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileView struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName"`
	Timezone       string `json:"timezone"`
	DailyResetHour int    `json:"dailyResetHour"`
	Plan           string `json:"plan"`
}

type profileInput struct {
	DisplayName    *string `json:"displayName"`
	Timezone       *string `json:"timezone"`
	DailyResetHour *int    `json:"dailyResetHour"`
}

type notificationPrefsInput struct {
	CheckInEnabled   *bool     `json:"checkInEnabled"`
	CheckInTimeLocal *string   `json:"checkInTimeLocal"`
	ReflectEnabled   *bool     `json:"reflectEnabled"`
	ReflectTimeLocal *string   `json:"reflectTimeLocal"`
	PushTokens       *[]string `json:"pushTokens"`
}

func newProfileView(user models.User) profileView {
	return profileView{
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		Timezone:       user.Timezone,
		DailyResetHour: user.DailyResetHour,
		Plan:           user.Plan,
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(newProfileView(*user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*input.DisplayName)
		updates["display_name"] = user.DisplayName
	}
	if input.Timezone != nil {
		timezone, err := services.ValidateTimezone(*input.Timezone)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		user.Timezone = timezone
		updates["timezone"] = timezone
	}
	if input.DailyResetHour != nil {
		if err := services.ValidateResetHour(*input.DailyResetHour); err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		user.DailyResetHour = *input.DailyResetHour
		updates["daily_reset_hour"] = *input.DailyResetHour
	}

	if len(updates) > 0 {
		if err := handler.repos.Users.UpdateByID(user.ID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}
	return c.JSON(newProfileView(*user))
}

func (handler *Handler) GetNotificationPrefs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prefs, err := handler.repos.Prefs.FindByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	return c.JSON(prefs)
}

func (handler *Handler) UpdateNotificationPrefs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := notificationPrefsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	prefs, err := handler.repos.Prefs.FindByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	prefs.UserID = user.ID

	if input.CheckInEnabled != nil {
		prefs.CheckInEnabled = *input.CheckInEnabled
	}
	if input.CheckInTimeLocal != nil {
		if err := services.ValidatePrefTime(*input.CheckInTimeLocal); err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		prefs.CheckInTimeLocal = strings.TrimSpace(*input.CheckInTimeLocal)
	}
	if input.ReflectEnabled != nil {
		prefs.ReflectEnabled = *input.ReflectEnabled
	}
	if input.ReflectTimeLocal != nil {
		if err := services.ValidatePrefTime(*input.ReflectTimeLocal); err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		prefs.ReflectTimeLocal = strings.TrimSpace(*input.ReflectTimeLocal)
	}
	if input.PushTokens != nil {
		tokens := make([]string, 0, len(*input.PushTokens))
		for _, token := range *input.PushTokens {
			if trimmed := strings.TrimSpace(token); trimmed != "" {
				tokens = append(tokens, trimmed)
			}
		}
		prefs.PushTokens = tokens
	}

	if err := handler.repos.Prefs.Save(&prefs); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save preferences")
	}
	return c.JSON(prefs)
}
