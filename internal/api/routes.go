package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/logs", handler.AddHabitLog)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.QueryLogs)
	logs.Get("/day/:date", handler.DayStatus)

	coach := api.Group("/coach", handler.AuthRequired)
	coach.Get("/quota", handler.CoachQuota)
	coach.Post("/ask", handler.AskCoach)

	plan := api.Group("/plan", handler.AuthRequired)
	plan.Get("", handler.GetPlan)
	plan.Post("/refresh", handler.RefreshPlan)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/profile", handler.GetProfile)
	settings.Put("/profile", handler.UpdateProfile)
	settings.Get("/notifications", handler.GetNotificationPrefs)
	settings.Put("/notifications", handler.UpdateNotificationPrefs)
}
