package contracts

import "fmt"

// Status tracks a contract through its lifecycle.
type Status string

const (
	StatusCreated   Status = "created"
	StatusSimulated Status = "simulated"
	StatusFunded    Status = "funded"
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// statusOrder positions each non-terminal-escape status along the intended
// progression. cancelled sits outside the ordering.
var statusOrder = map[Status]int{
	StatusCreated:   0,
	StatusSimulated: 1,
	StatusFunded:    2,
	StatusPending:   3,
	StatusActive:    4,
	StatusCompleted: 5,
}

func (s Status) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusOrder[s]
	return ok
}

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo enforces monotonic progression along the status order.
// cancelled is reachable from any non-terminal status as an escape hatch.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusOrder[next] > statusOrder[s]
}

// ParseStatus validates a wire value, defaulting empty to created.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusCreated, nil
	}
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}
