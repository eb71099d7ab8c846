package client

// MutationState tracks one optimistic mutation through its lifecycle.
type MutationState int

const (
	// MutationPending: applied to the local mirror, awaiting the server.
	MutationPending MutationState = iota
	// MutationConfirmed: the server accepted; local state is authoritative.
	MutationConfirmed
	// MutationRolledBack: the server rejected; the optimistic guess was
	// discarded.
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationPending:
		return "pending"
	case MutationConfirmed:
		return "confirmed"
	case MutationRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// Mutation is the per-mutation state machine. Transitions only leave
// Pending; confirming or rolling back twice is a no-op, and a settled
// mutation never changes state again.
type Mutation struct {
	state MutationState
}

func NewMutation() *Mutation {
	return &Mutation{state: MutationPending}
}

func (m *Mutation) State() MutationState {
	return m.state
}

// Confirm settles the mutation as accepted. Returns false if it was
// already settled.
func (m *Mutation) Confirm() bool {
	if m.state != MutationPending {
		return false
	}
	m.state = MutationConfirmed
	return true
}

// Rollback settles the mutation as discarded. Returns false if it was
// already settled.
func (m *Mutation) Rollback() bool {
	if m.state != MutationPending {
		return false
	}
	m.state = MutationRolledBack
	return true
}
