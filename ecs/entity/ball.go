package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/milk9111/dragball/prefabs"
)

// NewBall creates a ball at the spec's spawn point, at rest and falling. A
// ball that fails to build is destroyed.
func NewBall(w *ecs.World, spec *prefabs.BallSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("ball: nil spec")
	}

	ball := w.CreateEntity()
	if err := buildBall(w, ball, spec); err != nil {
		w.DestroyEntity(ball)
		return 0, err
	}
	return ball, nil
}

func buildBall(w *ecs.World, ball ecs.Entity, spec *prefabs.BallSpec) error {
	if err := ecs.Add(w, ball, component.BallTagComponent.Kind(), &component.BallTag{}); err != nil {
		return fmt.Errorf("ball: add ball tag: %w", err)
	}

	if err := ecs.Add(w, ball, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return fmt.Errorf("ball: add transform: %w", err)
	}

	if err := ecs.Add(w, ball, component.CircleComponent.Kind(), &component.Circle{}); err != nil {
		return fmt.Errorf("ball: add circle: %w", err)
	}

	if err := ecs.Add(w, ball, component.CircleRenderComponent.Kind(), &component.CircleRender{}); err != nil {
		return fmt.Errorf("ball: add circle render: %w", err)
	}

	if err := ecs.Add(w, ball, component.KinematicsComponent.Kind(), &component.Kinematics{}); err != nil {
		return fmt.Errorf("ball: add kinematics: %w", err)
	}

	if err := ecs.Add(w, ball, component.DraggableComponent.Kind(), &component.Draggable{}); err != nil {
		return fmt.Errorf("ball: add draggable: %w", err)
	}

	if err := ApplyBallSpec(w, ball, spec); err != nil {
		return err
	}
	return ResetBall(w, ball, spec)
}

// RespawnBall replaces old with a fresh ball built from spec. Per-entity
// state held by systems (drag holds, script runtimes) is dropped with the old
// handle. On error old is left untouched.
func RespawnBall(w *ecs.World, old ecs.Entity, spec *prefabs.BallSpec) (ecs.Entity, error) {
	ball, err := NewBall(w, spec)
	if err != nil {
		return old, err
	}
	w.DestroyEntity(old)
	return ball, nil
}

// ApplyBallSpec copies the tunables of spec onto an existing ball without
// touching its position or velocity.
func ApplyBallSpec(w *ecs.World, ball ecs.Entity, spec *prefabs.BallSpec) error {
	circle, ok := ecs.Get(w, ball, component.CircleComponent.Kind())
	if !ok {
		return fmt.Errorf("ball: %s has no circle", ball)
	}
	circle.Radius = spec.Circle.Radius

	if render, ok := ecs.Get(w, ball, component.CircleRenderComponent.Kind()); ok && spec.Circle.Color != nil {
		render.Color = spec.Circle.Color.Color
	}

	kin, ok := ecs.Get(w, ball, component.KinematicsComponent.Kind())
	if !ok {
		return fmt.Errorf("ball: %s has no kinematics", ball)
	}
	kin.Gravity = spec.GravityValue()
	kin.Restitution = spec.RestitutionValue()

	if spec.Script == "" {
		ecs.Remove(w, ball, component.ForceScriptComponent.Kind())
		kin.Accel = cp.Vector{X: spec.Physics.AccelX, Y: kin.Gravity}
		return nil
	}

	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return fmt.Errorf("ball: load script %s: %w", spec.Script, err)
	}
	gen := 0
	if prev, ok := ecs.Get(w, ball, component.ForceScriptComponent.Kind()); ok {
		gen = prev.Generation + 1
	}
	if err := ecs.Add(w, ball, component.ForceScriptComponent.Kind(), &component.ForceScript{
		Name:       spec.Script,
		Source:     src,
		Generation: gen,
	}); err != nil {
		return fmt.Errorf("ball: add force script: %w", err)
	}
	return nil
}

// ResetBall moves the ball back to its spawn point and drops any drag.
func ResetBall(w *ecs.World, ball ecs.Entity, spec *prefabs.BallSpec) error {
	t, ok := ecs.Get(w, ball, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("ball: %s has no transform", ball)
	}
	t.X = spec.Transform.X
	t.Y = spec.Transform.Y

	kin, ok := ecs.Get(w, ball, component.KinematicsComponent.Kind())
	if !ok {
		return fmt.Errorf("ball: %s has no kinematics", ball)
	}
	kin.Velocity = cp.Vector{X: spec.Physics.VelocityX, Y: spec.Physics.VelocityY}
	kin.Accel = cp.Vector{X: spec.Physics.AccelX, Y: kin.Gravity}
	kin.DirX = 1
	kin.DirY = 1

	if drag, ok := ecs.Get(w, ball, component.DraggableComponent.Kind()); ok {
		*drag = component.Draggable{}
	}
	return nil
}

// NewPlayfield creates the singleton entity carrying pointer input, the
// window bounds and session stats.
func NewPlayfield(w *ecs.World, width, height float64) (ecs.Entity, error) {
	field := ecs.CreateEntity(w)
	if err := ecs.Add(w, field, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return 0, fmt.Errorf("playfield: add pointer: %w", err)
	}

	if err := ecs.Add(w, field, component.BoundsComponent.Kind(), &component.Bounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("playfield: add bounds: %w", err)
	}

	if err := ecs.Add(w, field, component.StatsComponent.Kind(), &component.Stats{}); err != nil {
		return 0, fmt.Errorf("playfield: add stats: %w", err)
	}
	return field, nil
}
