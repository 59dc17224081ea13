package component

// WorldBounds is the screen rectangle. The physics system closes it with
// solid walls on three sides and a kill sensor along the bottom.
type WorldBounds struct {
	Width  float64
	Height float64
}

var WorldBoundsComponent = NewComponent[WorldBounds]()
