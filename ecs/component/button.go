package component

// Button is a transport button centred on X, Y.
type Button struct {
	Action  TransportAction
	X, Y    float64
	Size    float64
	Scale   float64
	Pressed bool
}

func (b Button) extent() float64 {
	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	return b.Size * scale / 2
}

func (b Button) Contains(x, y float64) bool {
	r := b.extent()
	return x >= b.X-r && x <= b.X+r && y >= b.Y-r && y <= b.Y+r
}

var ButtonComponent = NewComponent[Button]()
