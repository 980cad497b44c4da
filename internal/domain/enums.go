package domain

type GoalType string

const (
	GoalTime    GoalType = "time"
	GoalCount   GoalType = "count"
	GoalBoolean GoalType = "boolean"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"time": true, "count": true, "boolean": true,
}

type SessionStatus string

const (
	SessionRunning   SessionStatus = "running"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
	SessionCanceled  SessionStatus = "canceled"
)

// Terminal reports whether the status admits no further transitions.
func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionCanceled
}

type LogSource string

const (
	SourceManual     LogSource = "manual"
	SourceFocus      LogSource = "focus"
	SourceImport     LogSource = "import"
	SourceAutomation LogSource = "automation"
)
