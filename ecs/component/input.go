package component

// Key is the per-frame state of one logical key.
type Key struct {
	Held     bool
	Pressed  bool
	Released bool
}

// Input stores per-frame keyboard state for an entity.
type Input struct {
	Left  Key
	Right Key
	Up    Key
	Down  Key
}

// Horizontal reports whether a left or right key is held.
func (in Input) Horizontal() bool {
	return in.Left.Held || in.Right.Held
}

var InputComponent = NewComponent[Input]()
