package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
)

var ErrEmptyPrompt = errors.New("prompt must not be empty")

const (
	coachAnswerWordLimit = 150

	offTopicAnswer = "I can only help with habits, goals, routines, and reflection. Try asking about your plan for today."
	apologyAnswer  = "Sorry, the coach is unavailable right now. Your question wasn't counted - please try again in a moment."
)

var offTopicRegex = regexp.MustCompile(`(?i)(^|\b)(crypto|stocks?|politics?|celebrity|gossip)\b`)

// CoachBackend is the opaque text-completion collaborator. The remote side
// owns the real topic guardrail; this service only pre-filters obvious
// off-topic prompts and clips the answer.
type CoachBackend interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type CoachAnswer struct {
	Answer string `json:"answer"`
	// Degraded marks a canned fallback answer that did not consume quota.
	Degraded bool `json:"degraded,omitempty"`
	// Counted reports whether the answer was accounted against the quota.
	Counted bool `json:"-"`
}

type CoachService struct {
	backend CoachBackend
}

func NewCoachService(backend CoachBackend) *CoachService {
	return &CoachService{backend: backend}
}

// Ask runs the prompt through the cheap off-topic guard, calls the backend,
// and clips the answer. Backend failures yield the canned apology instead of
// an error; only answers that actually reached the model report Counted.
func (service *CoachService) Ask(ctx context.Context, prompt string) (CoachAnswer, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return CoachAnswer{}, ErrEmptyPrompt
	}

	if offTopicRegex.MatchString(trimmed) {
		return CoachAnswer{Answer: offTopicAnswer}, nil
	}

	if service.backend == nil {
		return CoachAnswer{Answer: apologyAnswer, Degraded: true}, nil
	}

	answer, err := service.backend.Ask(ctx, trimmed)
	if err != nil {
		return CoachAnswer{Answer: apologyAnswer, Degraded: true}, nil
	}

	return CoachAnswer{Answer: ClipWords(answer, coachAnswerWordLimit), Counted: true}, nil
}

// ClipWords truncates text to at most limit whitespace-separated words,
// appending an ellipsis when anything was cut.
func ClipWords(text string, limit int) string {
	trimmed := strings.TrimSpace(text)
	words := strings.Fields(trimmed)
	if len(words) <= limit {
		return trimmed
	}
	return strings.Join(words[:limit], " ") + "…"
}

// HTTPCoachBackend talks to the hosted coach worker: a POST with a shared
// secret header, returning {"answer": "..."}.
type HTTPCoachBackend struct {
	client *resty.Client
	url    string
	secret string
}

func NewHTTPCoachBackend(url string, secret string) *HTTPCoachBackend {
	return &HTTPCoachBackend{
		client: resty.New(),
		url:    url,
		secret: secret,
	}
}

type coachRequest struct {
	Prompt string `json:"prompt"`
}

type coachResponse struct {
	Answer string `json:"answer"`
	Error  string `json:"error"`
}

func (backend *HTTPCoachBackend) Ask(ctx context.Context, prompt string) (string, error) {
	var parsed coachResponse
	response, err := backend.client.R().
		SetContext(ctx).
		SetHeader("x-dayzero-secret", backend.secret).
		SetBody(coachRequest{Prompt: prompt}).
		SetResult(&parsed).
		Post(backend.url)
	if err != nil {
		return "", fmt.Errorf("coach backend request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("coach backend status %d: %s", response.StatusCode(), response.String())
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("coach backend error: %s", parsed.Error)
	}
	return parsed.Answer, nil
}
