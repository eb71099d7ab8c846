package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutationStartsPending(t *testing.T) {
	m := NewMutation()
	assert.Equal(t, MutationPending, m.State())
}

func TestMutationConfirm(t *testing.T) {
	m := NewMutation()

	assert.True(t, m.Confirm())
	assert.Equal(t, MutationConfirmed, m.State())

	// Settled mutations never change state again
	assert.False(t, m.Confirm())
	assert.False(t, m.Rollback())
	assert.Equal(t, MutationConfirmed, m.State())
}

func TestMutationRollback(t *testing.T) {
	m := NewMutation()

	assert.True(t, m.Rollback())
	assert.Equal(t, MutationRolledBack, m.State())

	assert.False(t, m.Rollback())
	assert.False(t, m.Confirm())
	assert.Equal(t, MutationRolledBack, m.State())
}

func TestMutationStateString(t *testing.T) {
	assert.Equal(t, "pending", MutationPending.String())
	assert.Equal(t, "confirmed", MutationConfirmed.String())
	assert.Equal(t, "rolled_back", MutationRolledBack.String())
	assert.Equal(t, "unknown", MutationState(99).String())
}
