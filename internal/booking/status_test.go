package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	rejected := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusPending},
		{StatusConfirmed, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusCompleted, StatusCancelled},
		{StatusCompleted, StatusConfirmed},
		{StatusPending, StatusPending},
	}
	for _, tr := range rejected {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be rejected", tr.from, tr.to)
	}
}
