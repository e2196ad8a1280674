package obj

import "iter"

// Slot names the fixed body positions the key map drives.
type Slot int

const (
	// SlotArrows is the subject of collision checks, moved with the arrow keys.
	SlotArrows Slot = iota
	// SlotWASD is moved with W, A, S and D.
	SlotWASD
)

func (s Slot) String() string {
	switch s {
	case SlotArrows:
		return "arrows"
	case SlotWASD:
		return "wasd"
	default:
		return "unknown"
	}
}

// Manager owns bodies in insertion order. Index 0 is the collision subject.
type Manager struct {
	bodies []*Body
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends a body and takes ownership of it.
func (m *Manager) Add(b *Body) {
	m.bodies = append(m.bodies, b)
}

// At returns the body at index. It panics when index is out of range.
func (m *Manager) At(index int) *Body {
	return m.bodies[index]
}

// Slot returns the body bound to s.
func (m *Manager) Slot(s Slot) *Body {
	return m.At(int(s))
}

// Len returns the number of bodies.
func (m *Manager) Len() int {
	return len(m.bodies)
}

// All yields bodies in insertion order.
func (m *Manager) All() iter.Seq[*Body] {
	return func(yield func(*Body) bool) {
		for _, b := range m.bodies {
			if !yield(b) {
				return
			}
		}
	}
}

// CheckSubjectAgainstRest reports whether the subject's bounds intersect the
// bounds of any other body. Other bodies are never checked against each
// other. It panics on an empty manager.
func (m *Manager) CheckSubjectAgainstRest() bool {
	if len(m.bodies) == 0 {
		panic("obj: need at least 1 body")
	}

	subject := m.bodies[0].Bounds()
	for _, other := range m.bodies[1:] {
		if subject.Intersects(other.Bounds()) {
			return true
		}
	}
	return false
}
