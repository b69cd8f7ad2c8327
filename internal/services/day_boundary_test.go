package services

import (
	"testing"
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
)

func TestLocalDayIDDependsOnZone(t *testing.T) {
	t.Parallel()

	// 2024-01-02 01:30 UTC is still Jan 1 in New York and already Jan 2 in Tokyo.
	instant := time.Date(2024, time.January, 2, 1, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "utc", zone: "UTC", want: "2024-01-02"},
		{name: "new york", zone: "America/New_York", want: "2024-01-01"},
		{name: "tokyo", zone: "Asia/Tokyo", want: "2024-01-02"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			location := mustLoadLocation(t, testCase.zone)
			if got := LocalDayID(location, instant); got != testCase.want {
				t.Fatalf("expected day id %s, got %s", testCase.want, got)
			}
		})
	}
}

func TestLocalDayIDNilLocationFallsBackToUTC(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	if got := LocalDayID(nil, instant); got != "2024-03-15" {
		t.Fatalf("expected UTC fallback day id 2024-03-15, got %s", got)
	}
}

func TestPreviousDayIDWalksCalendarBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mid month", in: "2024-01-15", want: "2024-01-14"},
		{name: "month boundary", in: "2024-03-01", want: "2024-02-29"},
		{name: "year boundary", in: "2024-01-01", want: "2023-12-31"},
		{name: "non leap february", in: "2023-03-01", want: "2023-02-28"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := PreviousDayID(testCase.in); got != testCase.want {
				t.Fatalf("expected %s, got %s", testCase.want, got)
			}
		})
	}
}

func TestPreviousDayIDInvalidInput(t *testing.T) {
	t.Parallel()

	if got := PreviousDayID("not-a-day"); got != "" {
		t.Fatalf("expected empty string for malformed day id, got %q", got)
	}
}

func TestPreviousDayIDIgnoresDSTTransitions(t *testing.T) {
	t.Parallel()

	// 2024-03-10 is the US spring-forward date; nominal-calendar arithmetic
	// must still yield the adjacent date.
	if got := PreviousDayID("2024-03-11"); got != "2024-03-10" {
		t.Fatalf("expected 2024-03-10, got %s", got)
	}
	if got := PreviousDayID("2024-11-04"); got != "2024-11-03" {
		t.Fatalf("expected 2024-11-03, got %s", got)
	}
}

func TestEnsureDailyResetRollsOverOnNewDay(t *testing.T) {
	t.Parallel()

	state := models.AIQuota{UserID: 3, UsedToday: 1, LastResetDayID: "2024-01-01"}
	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	next, changed := EnsureDailyReset(state, time.UTC, now, models.DefaultDailyResetHour)
	if !changed {
		t.Fatal("expected reset on new day")
	}
	if next.UsedToday != 0 || next.LastResetDayID != "2024-01-02" {
		t.Fatalf("expected zeroed quota on 2024-01-02, got %#v", next)
	}
	if next.UserID != 3 {
		t.Fatalf("expected user id preserved, got %d", next.UserID)
	}
}

func TestEnsureDailyResetIdempotentWithinSameDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
	state := models.AIQuota{UsedToday: 1, LastResetDayID: "2024-01-01"}

	first, changed := EnsureDailyReset(state, time.UTC, now, models.DefaultDailyResetHour)
	if !changed {
		t.Fatal("expected first call to reset")
	}

	second, changed := EnsureDailyReset(first, time.UTC, now, models.DefaultDailyResetHour)
	if changed {
		t.Fatal("expected second call to be a no-op")
	}
	if second != first {
		t.Fatalf("expected unchanged state, got %#v", second)
	}
}

func TestEnsureDailyResetNeverResetBefore(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
	next, changed := EnsureDailyReset(models.AIQuota{}, time.UTC, now, models.DefaultDailyResetHour)
	if !changed {
		t.Fatal("expected initial reset when LastResetDayID is empty")
	}
	if next.LastResetDayID != "2024-01-02" || next.UsedToday != 0 {
		t.Fatalf("unexpected initial reset state %#v", next)
	}
}

func TestEffectiveDayIDTracksMidnightRegardlessOfResetHour(t *testing.T) {
	t.Parallel()

	// Policy pin: before and after the configured reset hour the effective
	// day is the same midnight-aligned id.
	location := mustLoadLocation(t, "Europe/Berlin")
	morning := time.Date(2024, time.June, 10, 6, 0, 0, 0, location)
	evening := time.Date(2024, time.June, 10, 23, 0, 0, 0, location)

	if got := EffectiveDayID(location, morning, 20); got != "2024-06-10" {
		t.Fatalf("expected 2024-06-10 before reset hour, got %s", got)
	}
	if got := EffectiveDayID(location, evening, 20); got != "2024-06-10" {
		t.Fatalf("expected 2024-06-10 after reset hour, got %s", got)
	}
}

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	location, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %q: %v", name, err)
	}
	return location
}
