package component

// Draggable marks an entity the pointer can grab. Elapsed counts seconds
// since the current (or last) grab began.
type Draggable struct {
	Active  bool
	Elapsed float64
	StartX  float64
	StartY  float64
}

var DraggableComponent = NewComponent[Draggable]()
