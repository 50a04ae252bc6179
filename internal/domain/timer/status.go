package timer

// Severity classifies a status line for presentation (maps to a CSS class in
// the GUI and a lipgloss style in the TUI).
type Severity string

const (
	SeverityNone    Severity = ""
	SeverityNeutral Severity = "neutral"
	SeverityWarning Severity = "warning"
	SeverityRunning Severity = "running"
)

// Status is the user-facing status line, derived from phase and remaining time.
type Status struct {
	Text     string
	Severity Severity
}

const (
	msgReady           = "READY TO POD"
	msgInvalidDuration = "INVALID TIME (1-480 MIN)"
	msgRunning         = "TIMER RUNNING"
	msgGettingSleepy   = "GETTING SLEEPY..."
	msgAlmostThere     = "ALMOST THERE..."
	msgSweetDreams     = "SWEET DREAMS WHALE!"
	msgCancelled       = "TIMER CANCELLED"
)

const (
	// Remaining-seconds thresholds for the sticky status upgrades.
	almostThereThreshold   = 10
	gettingSleepyThreshold = 60
)
