// Package contract defines the JSON bodies exchanged between the tally
// server and its clients, plus conversions to and from the domain types.
package contract

import "time"

type Goal struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	GoalType  string    `json:"goal_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type GoalCreate struct {
	Name     string `json:"name"`
	GoalType string `json:"goal_type"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type GoalUpdate struct {
	Name     *string `json:"name,omitempty"`
	GoalType *string `json:"goal_type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type GoalList struct {
	Items []Goal `json:"items"`
	Total int    `json:"total"`
}

type Revision struct {
	ID          int64     `json:"id"`
	GoalID      int64     `json:"goal_id"`
	TargetValue int       `json:"target_value"`
	ValidFrom   string    `json:"valid_from"`
	ValidTo     *string   `json:"valid_to"`
	CreatedAt   time.Time `json:"created_at"`
}

type RevisionCreate struct {
	TargetValue int     `json:"target_value"`
	ValidFrom   string  `json:"valid_from"`
	ValidTo     *string `json:"valid_to,omitempty"`
}

type RevisionList struct {
	Items []Revision `json:"items"`
	Total int        `json:"total"`
}

type Log struct {
	ID             int64     `json:"id"`
	GoalID         int64     `json:"goal_id"`
	FocusSessionID *int64    `json:"focus_session_id"`
	Date           string    `json:"date"`
	Value          int       `json:"value"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

type LogCreate struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type LogUpdate struct {
	Value int `json:"value"`
}

type LogList struct {
	Items []Log `json:"items"`
	Total int   `json:"total"`
}

type Session struct {
	ID              int64      `json:"id"`
	GoalID          *int64     `json:"goal_id"`
	DurationSeconds int        `json:"duration_seconds"`
	PausedSeconds   int        `json:"paused_seconds"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
}

type SessionCreate struct {
	DurationSeconds int    `json:"duration_seconds"`
	GoalID          *int64 `json:"goal_id,omitempty"`
}

type SessionList struct {
	Items []Session `json:"items"`
	Total int       `json:"total"`
}

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Heatmap struct {
	GoalID int64        `json:"goal_id"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Unit   string       `json:"unit"`
	Values []HeatmapDay `json:"values"`
}

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
