package booking

import "errors"

var ErrInvalidTransition = errors.New("invalid status transition")

// transitions lists the allowed status moves. Cancelled and completed
// are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
