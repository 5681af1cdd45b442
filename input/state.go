package input

// State is the last observed status of a key. The zero value is Released.
type State int

const (
	Released State = iota
	Pressed
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}
