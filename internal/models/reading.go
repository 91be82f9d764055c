package models

import "time"

// DefaultMuscleGroup labels readings recorded without an explicit group.
const DefaultMuscleGroup = "General"

// Reading is one recorded EMG sample set. Values keep recording order and
// may be empty. Timestamp is an ISO-8601 string, set at creation.
type Reading struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Values      []float64 `json:"values"`
	MuscleGroup string    `json:"muscleGroup"`
	Timestamp   string    `json:"timestamp"`
}

// Time parses the reading's timestamp. Unparseable timestamps yield the
// zero time, which sorts such readings last in recency queries.
func (r *Reading) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// WeeklyStats summarizes a user's readings over the trailing seven days.
type WeeklyStats struct {
	Sessions      int     `json:"sessions"`
	AvgActivation float64 `json:"avgActivation"`
	Peak          float64 `json:"peak"`
}
