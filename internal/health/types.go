package health

import "time"

type State string

const (
	StateUp   State = "UP"
	StateDown State = "DOWN"
)

// Status is the outcome of one monitor.
type Status struct {
	State   State
	Message string
	URL     string
	Error   string
	Latency time.Duration
}

// Report aggregates all monitors. State is DOWN as soon as one monitor is DOWN.
type Report struct {
	State      State
	Components map[string]Status
	CheckedAt  time.Time
}

// Up returns an UP status.
func Up(message string) Status {
	return Status{State: StateUp, Message: message}
}

// Down returns a DOWN status carrying err.
func Down(message string, err error) Status {
	s := Status{State: StateDown, Message: message}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}
