package component

// Pointer merges the mouse and the first touch into one cursor.
type Pointer struct {
	X, Y     float64
	Down     bool
	Pressed  bool
	Released bool
}

var PointerComponent = NewComponent[Pointer]()
