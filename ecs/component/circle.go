package component

import "image/color"

// Circle is a round collider inscribed in the square at the entity's
// transform, so its centre sits at (X+Radius, Y+Radius).
type Circle struct {
	Radius float64
}

func (c Circle) Center(t Transform) (float64, float64) {
	return t.X + c.Radius, t.Y + c.Radius
}

var CircleComponent = NewComponent[Circle]()

type CircleRender struct {
	Color color.Color
}

var CircleRenderComponent = NewComponent[CircleRender]()
