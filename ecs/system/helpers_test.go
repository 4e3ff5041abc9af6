package system

import (
	"testing"

	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/milk9111/dragball/ecs/entity"
	"github.com/milk9111/dragball/prefabs"
)

type scriptedPointer struct {
	samples []PointerSample
	next    int
}

func (p *scriptedPointer) Sample() PointerSample {
	if len(p.samples) == 0 {
		return PointerSample{}
	}
	if p.next >= len(p.samples) {
		return p.samples[len(p.samples)-1]
	}
	s := p.samples[p.next]
	p.next++
	return s
}

func testSpec() *prefabs.BallSpec {
	return &prefabs.BallSpec{
		Name:   "ball",
		Window: prefabs.WindowSpec{Width: 800, Height: 500},
		Circle: prefabs.CircleSpec{Radius: 25},
	}
}

type fixture struct {
	w    *ecs.World
	ball ecs.Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewPlayfield(w, 800, 500); err != nil {
		t.Fatalf("playfield: %v", err)
	}
	ball, err := entity.NewBall(w, testSpec())
	if err != nil {
		t.Fatalf("ball: %v", err)
	}
	return &fixture{w: w, ball: ball}
}

func (f *fixture) transform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.ball, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("ball has no transform")
	}
	return tr
}

func (f *fixture) kinematics(t *testing.T) *component.Kinematics {
	t.Helper()
	kin, ok := ecs.Get(f.w, f.ball, component.KinematicsComponent.Kind())
	if !ok {
		t.Fatalf("ball has no kinematics")
	}
	return kin
}

func (f *fixture) drag(t *testing.T) *component.Draggable {
	t.Helper()
	d, ok := ecs.Get(f.w, f.ball, component.DraggableComponent.Kind())
	if !ok {
		t.Fatalf("ball has no draggable")
	}
	return d
}

func (f *fixture) stats(t *testing.T) *component.Stats {
	t.Helper()
	se, ok := f.w.First(component.StatsComponent.Kind())
	if !ok {
		t.Fatalf("no stats entity")
	}
	s, _ := ecs.Get(f.w, se, component.StatsComponent.Kind())
	return s
}
