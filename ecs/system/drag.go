package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragball/common"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/rs/zerolog"
)

// DragSystem lets the pointer grab a ball, carry it, and throw it with the
// average velocity of the drag.
type DragSystem struct {
	log  zerolog.Logger
	held ecs.Entity
}

func NewDragSystem(log zerolog.Logger) *DragSystem {
	return &DragSystem{log: log}
}

func (d *DragSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}

	pe, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	pointer, _ := ecs.Get(w, pe, component.PointerComponent.Kind())

	d.dropStaleHold(w)

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.DraggableComponent.Kind(),
		component.KinematicsComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, drag *component.Draggable, kin *component.Kinematics) {
			if pointer.Pressed {
				if !drag.Active {
					if d.held.Valid() || !d.onBall(w, e, t, pointer) {
						return
					}
					d.grab(w, e, t, drag, kin)
				}
				if d.held != e {
					return
				}
				t.X += pointer.DX
				t.Y += pointer.DY
				return
			}

			if drag.Active {
				d.release(w, e, t, drag, kin)
			}
		})
}

// dropStaleHold forgets a hold whose ball was destroyed or reset while the
// button was still down.
func (d *DragSystem) dropStaleHold(w *ecs.World) {
	if !d.held.Valid() {
		return
	}
	drag, ok := ecs.Get(w, d.held, component.DraggableComponent.Kind())
	if !ok || !drag.Active {
		d.held = 0
	}
}

func (d *DragSystem) onBall(w *ecs.World, e ecs.Entity, t *component.Transform, p *component.Pointer) bool {
	circle, ok := ecs.Get(w, e, component.CircleComponent.Kind())
	if !ok {
		return false
	}
	cx, cy := circle.Center(*t)
	return common.CircleContains(cx, cy, circle.Radius, p.X, p.Y)
}

func (d *DragSystem) grab(w *ecs.World, e ecs.Entity, t *component.Transform, drag *component.Draggable, kin *component.Kinematics) {
	drag.Active = true
	drag.Elapsed = 0
	drag.StartX = t.X
	drag.StartY = t.Y
	kin.Accel = cp.Vector{X: 0, Y: kin.Gravity}
	d.held = e

	d.log.Debug().Stringer("entity", e).Float64("x", t.X).Float64("y", t.Y).Msg("ball grabbed")
	w.Events().Push(ecs.Event{Type: ecs.EventBallGrabbed, Entity: e})
}

func (d *DragSystem) release(w *ecs.World, e ecs.Entity, t *component.Transform, drag *component.Draggable, kin *component.Kinematics) {
	drag.Active = false
	kin.Velocity = cp.Vector{
		X: common.ReleaseVelocity(t.X-drag.StartX, drag.Elapsed),
		Y: common.ReleaseVelocity(t.Y-drag.StartY, drag.Elapsed),
	}
	drag.StartX = 0
	drag.StartY = 0
	if d.held == e {
		d.held = 0
	}

	d.log.Info().
		Stringer("entity", e).
		Float64("x", t.X).
		Float64("y", t.Y).
		Float64("velocity_x", kin.Velocity.X).
		Float64("velocity_y", kin.Velocity.Y).
		Float64("acceleration_x", kin.Accel.X).
		Float64("acceleration_y", kin.Accel.Y).
		Float64("time", drag.Elapsed).
		Msg("ball released")

	w.Events().Push(ecs.Event{
		Type:   ecs.EventBallReleased,
		Entity: e,
		Data: ecs.ReleaseEvent{
			VelocityX: kin.Velocity.X,
			VelocityY: kin.Velocity.Y,
			Elapsed:   drag.Elapsed,
		},
	})
}
