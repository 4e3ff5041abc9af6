package component

// Bounds stores the current playfield size in pixels.
type Bounds struct {
	Width  float64
	Height float64
}

var BoundsComponent = NewComponent[Bounds]()
