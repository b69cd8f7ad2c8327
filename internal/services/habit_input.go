package services

import (
	"regexp"
	"strings"

	"github.com/dayzero-app/dayzero/internal/models"
)

var targetTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NormalizeHabitTitle trims the title; an empty result is invalid.
func NormalizeHabitTitle(raw string) string {
	return strings.TrimSpace(raw)
}

// ClampTargetPerWeek forces the weekly target into [1,7]; zero or negative
// values fall back to the default rather than the minimum, matching the
// "absent" semantics of the mobile client.
func ClampTargetPerWeek(target int) int {
	if target <= 0 {
		return models.DefaultTargetPerWeek
	}
	if target < models.MinTargetPerWeek {
		return models.MinTargetPerWeek
	}
	if target > models.MaxTargetPerWeek {
		return models.MaxTargetPerWeek
	}
	return target
}

// ValidTargetTime reports whether raw is a 24-hour HH:MM wall-clock string.
func ValidTargetTime(raw string) bool {
	return targetTimeRegex.MatchString(raw)
}

// NormalizeTargetTimes trims each entry, drops empties, and rejects the
// whole set when any remaining entry is not HH:MM. Order is preserved.
func NormalizeTargetTimes(raw []string) ([]string, bool) {
	normalized := make([]string, 0, len(raw))
	for _, value := range raw {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if !ValidTargetTime(trimmed) {
			return nil, false
		}
		normalized = append(normalized, trimmed)
	}
	return normalized, true
}

// NormalizeHabitIcon substitutes the default icon for an empty one. The
// icon has no semantic meaning here.
func NormalizeHabitIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.DefaultHabitIcon
	}
	return trimmed
}
