package models

import "time"

// GoalType enumerates the four tracked goal kinds.
type GoalType string

const (
	GoalSteps      GoalType = "steps"
	GoalWater      GoalType = "water"
	GoalSleep      GoalType = "sleep"
	GoalActiveTime GoalType = "activeTime"
)

// Goal represents a daily numeric target for one tracked kind.
type Goal struct {
	// ID is the unique identifier for the goal (UUID format).
	ID string `json:"id"`

	// UserID is the account that owns this goal.
	UserID string `json:"userId"`

	GoalType GoalType `json:"goalType"`

	// TargetValue is the daily target; always positive.
	TargetValue float64 `json:"targetValue"`

	// ProgressValue is the recorded progress toward the target; never negative.
	ProgressValue float64 `json:"progressValue"`

	// Unit is the display unit, e.g. "steps", "glasses", "hours", "minutes".
	Unit string `json:"unit"`

	// Date is the day this goal applies to, YYYY-MM-DD.
	Date string `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Completed reports whether the goal's target has been reached.
func (g *Goal) Completed() bool {
	return g.ProgressValue >= g.TargetValue
}
