package component

import "image/color"

type LabelSource int

const (
	LabelTitle LabelSource = iota + 1
	LabelElapsed
	LabelTotal
)

// Label draws one of the session's text fields. Centered labels get a
// translucent panel behind them.
type Label struct {
	Source   LabelSource
	X, Y     float64
	Size     float64
	Centered bool
	Color    color.Color
}

var LabelComponent = NewComponent[Label]()
