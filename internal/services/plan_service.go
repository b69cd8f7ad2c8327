package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/go-resty/resty/v2"
)

// PlanSource is the remote entitlement document. It can be absent or
// unreachable; the cached tier then stays authoritative.
type PlanSource interface {
	FetchPlan(ctx context.Context, userID uint) (string, error)
}

type PlanUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type PlanService struct {
	users  PlanUserRepository
	source PlanSource
	now    func() time.Time
}

func NewPlanService(users PlanUserRepository, source PlanSource) *PlanService {
	return &PlanService{
		users:  users,
		source: source,
		now:    time.Now,
	}
}

// CurrentLimits resolves the plan limits from the cached tier. A missing
// user row degrades to the free tier instead of failing the caller.
func (service *PlanService) CurrentLimits(userID uint) PlanLimits {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return GetPlanLimits(models.PlanFree)
	}
	return GetPlanLimits(user.Plan)
}

// RefreshPlan asks the remote source for the current tier and updates the
// cache on success. On any failure the cached tier is returned unchanged
// together with the error, so callers can keep working offline.
func (service *PlanService) RefreshPlan(ctx context.Context, userID uint) (string, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.PlanFree, err
	}

	if service.source == nil {
		return user.Plan, nil
	}

	fetched, err := service.source.FetchPlan(ctx, userID)
	if err != nil {
		return user.Plan, err
	}
	if !models.ValidPlan(fetched) {
		return user.Plan, fmt.Errorf("remote plan source returned unknown tier %q", fetched)
	}

	if err := service.users.UpdateByID(userID, map[string]any{
		"plan":            fetched,
		"plan_fetched_at": service.now(),
	}); err != nil {
		return user.Plan, err
	}
	return fetched, nil
}

// HTTPPlanSource fetches {"plan": "..."} from the account backend.
type HTTPPlanSource struct {
	client *resty.Client
	url    string
	secret string
}

func NewHTTPPlanSource(url string, secret string) *HTTPPlanSource {
	return &HTTPPlanSource{
		client: resty.New(),
		url:    url,
		secret: secret,
	}
}

type planResponse struct {
	Plan string `json:"plan"`
}

func (source *HTTPPlanSource) FetchPlan(ctx context.Context, userID uint) (string, error) {
	var parsed planResponse
	response, err := source.client.R().
		SetContext(ctx).
		SetHeader("x-dayzero-secret", source.secret).
		SetQueryParam("user", fmt.Sprintf("%d", userID)).
		SetResult(&parsed).
		Get(source.url)
	if err != nil {
		return "", fmt.Errorf("plan source request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("plan source status %d: %s", response.StatusCode(), response.String())
	}
	return parsed.Plan, nil
}
