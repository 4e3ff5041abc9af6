package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
)

// PointerSample is the raw pointer state read from the platform.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	Touches []component.Touch
}

// PointerSource samples the platform pointer once per tick.
type PointerSource interface {
	Sample() PointerSample
}

// EbitenPointer reads the mouse, falling back to the first touch when no
// mouse button is held.
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
	held     ebiten.TouchID
	holding  bool
}

func (p *EbitenPointer) Sample() PointerSample {
	cx, cy := ebiten.CursorPosition()
	sample := PointerSample{
		X:       float64(cx),
		Y:       float64(cy),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		sample.Touches = append(sample.Touches, component.Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}

	if sample.Pressed {
		p.holding = false
		return sample
	}

	if p.holding && inpututil.IsTouchJustReleased(p.held) {
		p.holding = false
	}
	if !p.holding && len(p.touchIDs) > 0 {
		p.held = p.touchIDs[0]
		p.holding = true
	}
	if p.holding {
		tx, ty := ebiten.TouchPosition(p.held)
		sample.X = float64(tx)
		sample.Y = float64(ty)
		sample.Pressed = true
	}
	return sample
}

type InputSystem struct {
	source PointerSource
	prev   PointerSample
	primed bool
}

func NewInputSystem(source PointerSource) *InputSystem {
	if source == nil {
		source = &EbitenPointer{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	cur := i.source.Sample()
	if !i.primed {
		i.prev = cur
		i.primed = true
	}

	dx := cur.X - i.prev.X
	dy := cur.Y - i.prev.Y
	i.prev = cur

	ecs.ForEach(w, component.PointerComponent.Kind(), func(_ ecs.Entity, p *component.Pointer) {
		p.X = cur.X
		p.Y = cur.Y
		p.DX = dx
		p.DY = dy
		p.Pressed = cur.Pressed
		p.Touches = append(p.Touches[:0], cur.Touches...)
	})
}
