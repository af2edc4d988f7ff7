package engine

import "github.com/yourname/fitcoach/internal"

// ConversationMemory is the append-only ordered log of a session's turns.
// Entries are never removed or reordered; insertion order is chronological
// order.
type ConversationMemory struct {
	turns []internal.ConversationTurn
}

func (m *ConversationMemory) Append(turn internal.ConversationTurn) {
	m.turns = append(m.turns, turn)
}

// Turns returns a copy of the log so callers cannot disturb it.
func (m *ConversationMemory) Turns() []internal.ConversationTurn {
	out := make([]internal.ConversationTurn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Last returns the most recently appended turn, or nil when empty.
func (m *ConversationMemory) Last() *internal.ConversationTurn {
	if len(m.turns) == 0 {
		return nil
	}
	t := m.turns[len(m.turns)-1]
	return &t
}

func (m *ConversationMemory) Len() int { return len(m.turns) }
