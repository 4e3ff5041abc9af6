package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
)

const (
	touchMarkerRadius = 24
	touchDotRadius    = 4
)

var (
	backgroundColor  = color.White
	defaultBallColor = color.Black
	touchColor       = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0x90}
	grabOutlineColor = color.NRGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(backgroundColor)

	ecs.ForEach2(w,
		component.TransformComponent.Kind(),
		component.CircleComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, c *component.Circle) {
			var clr color.Color = defaultBallColor
			if cr, ok := ecs.Get(w, e, component.CircleRenderComponent.Kind()); ok && cr.Color != nil {
				clr = cr.Color
			}
			cx, cy := c.Center(*t)
			vector.FillCircle(screen, float32(cx), float32(cy), float32(c.Radius), clr, true)

			if drag, ok := ecs.Get(w, e, component.DraggableComponent.Kind()); ok && drag.Active {
				vector.StrokeCircle(screen, float32(cx), float32(cy), float32(c.Radius)+2, 2, grabOutlineColor, true)
			}
		})

	r.drawTouches(w, screen)
}

func (r *RenderSystem) drawTouches(w *ecs.World, screen *ebiten.Image) {
	pe, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	pointer, _ := ecs.Get(w, pe, component.PointerComponent.Kind())
	for _, touch := range pointer.Touches {
		x, y := float32(touch.X), float32(touch.Y)
		vector.StrokeCircle(screen, x, y, touchMarkerRadius, 2, touchColor, true)
		vector.FillCircle(screen, x, y, touchDotRadius, touchColor, true)
	}
}
