package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dayzero-app/dayzero/internal/services"
)

func TestCoachQuotaReportsFreeTierLimit(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "coach-quota@example.com", "UTC")

	response := getJSON(t, app, "/api/coach/quota", token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	quota := services.CoachQuota{}
	decodeJSONBody(t, response.Body, &quota)
	if !quota.Allowed {
		t.Fatal("expected a fresh user to be allowed")
	}
	if quota.Used != 0 || quota.Max != 1 {
		t.Fatalf("expected used=0 max=1 on the free tier, got used=%d max=%d", quota.Used, quota.Max)
	}
}

func TestAskCoachCountsAnswerAndExhaustsQuota(t *testing.T) {
	t.Parallel()

	backend := &fixedCoachBackend{answer: "Start with a two-minute version of the habit."}
	app, _ := newTestAppWithOptions(t, Options{CoachBackend: backend})
	token := registerTestUser(t, app, "coach-count@example.com", "UTC")

	response := postJSON(t, app, "/api/coach/ask", map[string]string{
		"prompt": "How do I stick to my morning run?",
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	answer := services.CoachAnswer{}
	decodeJSONBody(t, response.Body, &answer)
	if answer.Answer != backend.answer {
		t.Fatalf("unexpected answer %q", answer.Answer)
	}

	second := postJSON(t, app, "/api/coach/ask", map[string]string{
		"prompt": "And my evening reading?",
	}, token)
	defer second.Body.Close()

	if second.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 once the free quota is spent, got %d", second.StatusCode)
	}
	if len(backend.prompts) != 1 {
		t.Fatalf("expected the backend called once, got %d calls", len(backend.prompts))
	}
}

func TestAskCoachOffTopicSkipsBackendAndQuota(t *testing.T) {
	t.Parallel()

	backend := &fixedCoachBackend{answer: "unused"}
	app, _ := newTestAppWithOptions(t, Options{CoachBackend: backend})
	token := registerTestUser(t, app, "coach-offtopic@example.com", "UTC")

	response := postJSON(t, app, "/api/coach/ask", map[string]string{
		"prompt": "Should I buy crypto today?",
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if len(backend.prompts) != 0 {
		t.Fatal("expected the backend to be skipped for off-topic prompts")
	}

	quotaResponse := getJSON(t, app, "/api/coach/quota", token)
	defer quotaResponse.Body.Close()
	quota := services.CoachQuota{}
	decodeJSONBody(t, quotaResponse.Body, &quota)
	if quota.Used != 0 {
		t.Fatalf("expected off-topic answers uncounted, got used=%d", quota.Used)
	}
}

func TestAskCoachBackendFailureIsFreeApology(t *testing.T) {
	t.Parallel()

	backend := &fixedCoachBackend{failure: errors.New("upstream down")}
	app, _ := newTestAppWithOptions(t, Options{CoachBackend: backend})
	token := registerTestUser(t, app, "coach-apology@example.com", "UTC")

	response := postJSON(t, app, "/api/coach/ask", map[string]string{
		"prompt": "Help me plan tomorrow",
	}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	answer := services.CoachAnswer{}
	decodeJSONBody(t, response.Body, &answer)
	if !answer.Degraded {
		t.Fatal("expected a degraded fallback answer")
	}

	quotaResponse := getJSON(t, app, "/api/coach/quota", token)
	defer quotaResponse.Body.Close()
	quota := services.CoachQuota{}
	decodeJSONBody(t, quotaResponse.Body, &quota)
	if quota.Used != 0 {
		t.Fatalf("expected failed answers uncounted, got used=%d", quota.Used)
	}
}

func TestAskCoachRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	app, _ := newTestAppWithOptions(t, Options{CoachBackend: &fixedCoachBackend{answer: "x"}})
	token := registerTestUser(t, app, "coach-empty@example.com", "UTC")

	response := postJSON(t, app, "/api/coach/ask", map[string]string{"prompt": "   "}, token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
