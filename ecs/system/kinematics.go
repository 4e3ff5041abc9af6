package system

import (
	"github.com/milk9111/dragball/common"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
)

// KinematicsSystem advances free balls by one fixed step: edge bounces first,
// then constant-acceleration integration on each axis. A bouncing ball is
// snapped back onto the edge it crossed so it cannot sink through the floor.
type KinematicsSystem struct {
	dt float64
}

func NewKinematicsSystem(dt float64) *KinematicsSystem {
	return &KinematicsSystem{dt: dt}
}

func (k *KinematicsSystem) Update(w *ecs.World) {
	if k == nil || w == nil {
		return
	}

	width, height := 0.0, 0.0
	hasBounds := false
	if be, ok := w.First(component.BoundsComponent.Kind()); ok {
		b, _ := ecs.Get(w, be, component.BoundsComponent.Kind())
		width, height = b.Width, b.Height
		hasBounds = width > 0 && height > 0
	}

	ecs.ForEach2(w,
		component.TransformComponent.Kind(),
		component.KinematicsComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, kin *component.Kinematics) {
			if drag, ok := ecs.Get(w, e, component.DraggableComponent.Kind()); ok {
				drag.Elapsed += k.dt
				if drag.Active {
					return
				}
			}

			if hasBounds {
				diameter := 0.0
				if c, ok := ecs.Get(w, e, component.CircleComponent.Kind()); ok {
					diameter = 2 * c.Radius
				}
				k.bounce(w, e, t, kin, width-diameter, height-diameter)
			}

			k.integrate(t, kin)
		})
}

func (k *KinematicsSystem) bounce(w *ecs.World, e ecs.Entity, t *component.Transform, kin *component.Kinematics, maxX, maxY float64) {
	if t.X <= 0 && kin.DirX == -1 {
		kin.DirX = 1
		kin.Velocity.X = common.Reflect(kin.Velocity.X, kin.Restitution)
		t.X = 0
		pushBounce(w, e, ecs.EdgeLeft, kin.Velocity.X)
	} else if t.X >= maxX && kin.DirX == 1 {
		kin.DirX = -1
		kin.Velocity.X = common.Reflect(kin.Velocity.X, kin.Restitution)
		t.X = maxX
		pushBounce(w, e, ecs.EdgeRight, kin.Velocity.X)
	}

	if t.Y <= 0 && kin.DirY == -1 {
		kin.DirY = 1
		kin.Velocity.Y = common.Reflect(kin.Velocity.Y, kin.Restitution)
		t.Y = 0
		pushBounce(w, e, ecs.EdgeTop, kin.Velocity.Y)
	} else if t.Y >= maxY && kin.DirY == 1 {
		kin.DirY = -1
		kin.Velocity.Y = common.Reflect(kin.Velocity.Y, kin.Restitution)
		t.Y = maxY
		pushBounce(w, e, ecs.EdgeBottom, kin.Velocity.Y)
	}
}

func (k *KinematicsSystem) integrate(t *component.Transform, kin *component.Kinematics) {
	ux := kin.Velocity.X
	kin.Velocity.X = common.FinalVelocity(ux, kin.Accel.X, k.dt)
	t.X += common.MetersToPixels(common.Displacement(ux, kin.Accel.X, k.dt))
	kin.DirX = common.Direction(kin.Velocity.X)

	uy := kin.Velocity.Y
	kin.Velocity.Y = common.FinalVelocity(uy, kin.Accel.Y, k.dt)
	t.Y += common.MetersToPixels(common.Displacement(uy, kin.Accel.Y, k.dt))
	kin.DirY = common.Direction(kin.Velocity.Y)
}

func pushBounce(w *ecs.World, e ecs.Entity, edge ecs.Edge, v float64) {
	w.Events().Push(ecs.Event{
		Type:   ecs.EventBallBounced,
		Entity: e,
		Data:   ecs.BounceEvent{Edge: edge, Velocity: v},
	})
}
