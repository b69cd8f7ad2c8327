package api

import (
	"errors"
	"time"

	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Timezone string `json:"timezone"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.Register(input.Email, input.Password, input.Timezone)
	switch {
	case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	token, err := handler.issueToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "token issue failed")
	}
	handler.setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.Login(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := handler.issueToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "token issue failed")
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  time.Now().Add(authTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
