// Package input keeps the per-frame keyboard state consumed by the frame loop.
package input

// Tracker maps keys to their most recently observed state. Keys that have
// never been recorded read as Released.
type Tracker struct {
	states map[Key]State
}

func NewTracker() *Tracker {
	return &Tracker{states: make(map[Key]State)}
}

// SetKeyState records state as the latest state for key, replacing any prior value.
func (t *Tracker) SetKeyState(key Key, state State) {
	if t.states == nil {
		t.states = make(map[Key]State)
	}
	t.states[key] = state
}

// GetKeyState returns the last recorded state for key, or Released.
func (t *Tracker) GetKeyState(key Key) State {
	if state, ok := t.states[key]; ok {
		return state
	}
	return Released
}

func (t *Tracker) IsPressed(key Key) bool {
	return t.GetKeyState(key) == Pressed
}
