package component

// Transform is the world position of an entity's centre. For physics
// entities it mirrors the body position after every step.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
