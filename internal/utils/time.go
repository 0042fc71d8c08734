package utils

import "time"

// NormalizeUTC converts a timestamp to UTC before it is persisted.
// Timestamps with an ambiguous zone are coerced, never rejected.
func NormalizeUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
