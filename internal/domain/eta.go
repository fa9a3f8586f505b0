package domain

import "time"

// WalkingRoute is the routing gateway's answer for one origin/destination
// pair.
type WalkingRoute struct {
	Duration time.Duration
	Distance string
}

// ETAResult is the walking-ETA computation for one event. When Available is
// false every other field is zero: upstream failures degrade to "unavailable",
// never to a hard error and never to a false "cannot make it".
type ETAResult struct {
	Available       bool      `json:"available"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Distance        string    `json:"distance,omitempty"`
	LeaveBy         time.Time `json:"leave_by,omitzero"`
	CanMakeIt       bool      `json:"can_make_it"`
}

// ETAUnavailable is the single degraded result for every failure mode.
func ETAUnavailable() *ETAResult {
	return &ETAResult{Available: false}
}
