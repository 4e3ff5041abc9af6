package component

// Touch is an active touch point in screen pixels.
type Touch struct {
	ID int
	X  float64
	Y  float64
}

// Pointer is the per-tick snapshot of mouse and touch input.
type Pointer struct {
	X, Y    float64
	DX, DY  float64
	Pressed bool
	Touches []Touch
}

var PointerComponent = NewComponent[Pointer]()
