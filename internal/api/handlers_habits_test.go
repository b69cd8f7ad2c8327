package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/gofiber/fiber/v2"
)

func createTestHabit(t *testing.T, app *fiber.App, token string, title string) models.Habit {
	t.Helper()

	response := postJSON(t, app, "/api/habits", map[string]any{
		"title":         title,
		"targetPerWeek": 3,
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create habit: expected status 201, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
	}

	habit := models.Habit{}
	decodeJSONBody(t, response.Body, &habit)
	return habit
}

func TestCreateHabitAppliesDefaults(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-defaults@example.com", "UTC")

	response := postJSON(t, app, "/api/habits", map[string]any{
		"title": "  Morning run  ",
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	habit := models.Habit{}
	decodeJSONBody(t, response.Body, &habit)
	if habit.Title != "Morning run" {
		t.Fatalf("expected trimmed title, got %q", habit.Title)
	}
	if habit.Icon != models.DefaultHabitIcon {
		t.Fatalf("expected default icon, got %q", habit.Icon)
	}
	if habit.TargetPerWeek != models.DefaultTargetPerWeek {
		t.Fatalf("expected default weekly target, got %d", habit.TargetPerWeek)
	}
	if habit.CreatedDayID == "" {
		t.Fatal("expected creation day id to be stamped")
	}
}

func TestCreateHabitRejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-empty@example.com", "UTC")

	response := postJSON(t, app, "/api/habits", map[string]any{"title": "   "}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestCreateHabitRejectsMalformedDate(t *testing.T) {
	t.Parallel()

	app, repos := newTestApp(t)
	token := registerTestUser(t, app, "habit-baddate@example.com", "UTC")

	response := postJSON(t, app, "/api/habits", map[string]any{
		"title": "Read",
		"date":  "not-a-date",
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	user, err := repos.Users.FindByNormalizedEmail("habit-baddate@example.com")
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	habits, err := repos.Habits.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list habits: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected no habit stored, got %d with day id %q", len(habits), habits[0].CreatedDayID)
	}
}

func TestCreateHabitEnforcesFreePlanLimit(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-limit@example.com", "UTC")

	createTestHabit(t, app, token, "First habit")

	response := postJSON(t, app, "/api/habits", map[string]any{"title": "Second habit"}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 on the free tier's second habit, got %d", response.StatusCode)
	}
}

func TestPremiumUserCreatesManyHabits(t *testing.T) {
	t.Parallel()

	app, repos := newTestApp(t)
	token := registerTestUser(t, app, "habit-premium@example.com", "UTC")

	user, err := repos.Users.FindByNormalizedEmail("habit-premium@example.com")
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if err := repos.Users.UpdateByID(user.ID, map[string]any{"plan": models.PlanPremium}); err != nil {
		t.Fatalf("upgrade plan: %v", err)
	}

	for i := 0; i < 5; i++ {
		createTestHabit(t, app, token, fmt.Sprintf("Habit %d", i))
	}
}

func TestUpdateHabitPatchesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-patch@example.com", "UTC")
	habit := createTestHabit(t, app, token, "Read")

	response := putJSON(t, app, "/api/habits/"+habit.ID, map[string]any{
		"targetPerWeek": 6,
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	updated := models.Habit{}
	decodeJSONBody(t, response.Body, &updated)
	if updated.Title != "Read" {
		t.Fatalf("expected title untouched, got %q", updated.Title)
	}
	if updated.TargetPerWeek != 6 {
		t.Fatalf("expected weekly target 6, got %d", updated.TargetPerWeek)
	}
	if updated.CreatedDayID != habit.CreatedDayID {
		t.Fatalf("expected creation day preserved, got %q", updated.CreatedDayID)
	}
}

func TestUpdateMissingHabitReturnsNotFound(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-missing@example.com", "UTC")

	response := putJSON(t, app, "/api/habits/nope", map[string]any{"title": "X"}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestDeleteHabitIsIdempotent(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-delete@example.com", "UTC")
	habit := createTestHabit(t, app, token, "Stretch")

	for i := 0; i < 2; i++ {
		response := sendJSON(t, app, http.MethodDelete, "/api/habits/"+habit.ID, nil, token)
		response.Body.Close()
		if response.StatusCode != http.StatusNoContent {
			t.Fatalf("delete attempt %d: expected status 204, got %d", i+1, response.StatusCode)
		}
	}
}

func TestListHabitsIncludesSummaryMetrics(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "habit-list@example.com", "UTC")
	habit := createTestHabit(t, app, token, "Meditate")

	logResponse := postJSON(t, app, "/api/habits/"+habit.ID+"/logs", map[string]any{
		"mood": models.MoodGreat,
	}, token)
	logResponse.Body.Close()
	if logResponse.StatusCode != http.StatusCreated {
		t.Fatalf("add log: expected status 201, got %d", logResponse.StatusCode)
	}

	response := getJSON(t, app, "/api/habits", token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	summaries := []HabitSummary{}
	decodeJSONBody(t, response.Body, &summaries)
	if len(summaries) != 1 {
		t.Fatalf("expected one habit, got %d", len(summaries))
	}
	summary := summaries[0]
	if summary.Streak != 1 {
		t.Fatalf("expected streak 1 after today's completion, got %d", summary.Streak)
	}
	if summary.Progress.Count != 1 {
		t.Fatalf("expected one completion this week, got %d", summary.Progress.Count)
	}
	if !summary.LoggedToday {
		t.Fatal("expected loggedToday to be true")
	}
}
