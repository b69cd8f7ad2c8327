package services

import (
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
)

const dayIDLayout = "2006-01-02"

// LocalDayID returns the YYYY-MM-DD calendar date of instant as seen in
// location. Day boundaries are civil midnight in that zone.
func LocalDayID(location *time.Location, instant time.Time) string {
	if location == nil {
		location = time.UTC
	}
	return instant.In(location).Format(dayIDLayout)
}

// PreviousDayID steps a day id back by one calendar day. The id is parsed
// as a UTC date on purpose: streak arithmetic is nominal-calendar, so DST
// transitions in the user's zone cannot skip or repeat a day.
func PreviousDayID(dayID string) string {
	parsed, err := time.ParseInLocation(dayIDLayout, dayID, time.UTC)
	if err != nil {
		return ""
	}
	return parsed.AddDate(0, 0, -1).Format(dayIDLayout)
}

// ParseDayID reports whether raw is a well-formed YYYY-MM-DD day id.
func ParseDayID(raw string) (time.Time, error) {
	return time.ParseInLocation(dayIDLayout, raw, time.UTC)
}

// EffectiveDayID is the single place the daily reset boundary is decided.
// The reset hour is accepted for forward compatibility but the effective day
// currently always tracks the midnight-aligned day id, matching the shipped
// behavior of the mobile client. Swapping in an "after HH:00 only" policy
// means changing this function and nothing else.
func EffectiveDayID(location *time.Location, now time.Time, resetHourLocal int) string {
	_ = resetHourLocal
	return LocalDayID(location, now)
}

// EnsureDailyReset rolls the quota state over when the effective day has
// changed since the last reset. The second return value reports whether the
// state changed, so callers can skip a redundant write.
func EnsureDailyReset(state models.AIQuota, location *time.Location, now time.Time, resetHourLocal int) (models.AIQuota, bool) {
	effectiveDay := EffectiveDayID(location, now, resetHourLocal)
	if state.LastResetDayID == effectiveDay {
		return state, false
	}
	return models.AIQuota{
		UserID:         state.UserID,
		UsedToday:      0,
		LastResetDayID: effectiveDay,
	}, true
}
