package system

import (
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
)

// BoundsSystem keeps the Bounds component in step with the layout size so
// balls bounce off the window edges even after a resize.
type BoundsSystem struct {
	size func() (float64, float64)
}

func NewBoundsSystem(size func() (float64, float64)) *BoundsSystem {
	return &BoundsSystem{size: size}
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.size == nil {
		return
	}
	width, height := s.size()
	if width <= 0 || height <= 0 {
		return
	}
	ecs.ForEach(w, component.BoundsComponent.Kind(), func(_ ecs.Entity, b *component.Bounds) {
		b.Width = width
		b.Height = height
	})
}
