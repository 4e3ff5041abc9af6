package system

import (
	"math"
	"testing"

	"github.com/milk9111/dragball/common"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/milk9111/dragball/ecs/entity"
	"github.com/rs/zerolog"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newDragScheduler(src PointerSource, dt float64) *ecs.Scheduler {
	log := zerolog.Nop()
	return ecs.NewScheduler(
		NewInputSystem(src),
		NewDragSystem(log),
		NewKinematicsSystem(dt),
		NewStatsSystem(log),
	)
}

func TestDragGrabMoveRelease(t *testing.T) {
	f := newFixture(t)
	tr := f.transform(t)
	tr.X, tr.Y = 100, 100
	kin := f.kinematics(t)
	kin.Accel.X = 3

	src := &scriptedPointer{samples: []PointerSample{
		{X: 125, Y: 125, Pressed: true},
		{X: 125 + common.PixelsPerMeter, Y: 125, Pressed: true},
		{X: 125 + common.PixelsPerMeter, Y: 125},
	}}
	s := newDragScheduler(src, 0.5)

	s.Update(f.w)
	drag := f.drag(t)
	if !drag.Active || drag.StartX != 100 || drag.StartY != 100 {
		t.Fatalf("expected grab at (100,100), got %+v", drag)
	}
	if kin.Accel.X != 0 || kin.Accel.Y != 9.8 {
		t.Fatalf("grab must reset acceleration, got %+v", kin.Accel)
	}
	if tr.X != 100 || tr.Y != 100 {
		t.Fatalf("held ball must not fall, got (%v, %v)", tr.X, tr.Y)
	}

	s.Update(f.w)
	if !near(tr.X, 100+common.PixelsPerMeter) || tr.Y != 100 {
		t.Fatalf("expected ball carried by cursor delta, got (%v, %v)", tr.X, tr.Y)
	}
	if drag.Elapsed != 1.0 {
		t.Fatalf("expected 1s elapsed, got %v", drag.Elapsed)
	}

	s.Update(f.w)
	if drag.Active {
		t.Fatalf("expected release")
	}
	if drag.StartX != 0 || drag.StartY != 0 {
		t.Fatalf("release must clear the start position, got %+v", drag)
	}
	// thrown at 1 m/s to the right, then integrated for one 0.5s step
	if !near(kin.Velocity.X, 1) || !near(kin.Velocity.Y, 4.9) {
		t.Fatalf("unexpected velocity after release %+v", kin.Velocity)
	}
	if f.stats(t).Throws != 1 {
		t.Fatalf("expected one throw recorded")
	}
}

func TestDragPressOutsideBallIgnored(t *testing.T) {
	f := newFixture(t)
	tr := f.transform(t)
	tr.X, tr.Y = 100, 100

	src := &scriptedPointer{samples: []PointerSample{
		// corner of the bounding square lies outside the circle
		{X: 101, Y: 101, Pressed: true},
	}}
	in := NewInputSystem(src)
	d := NewDragSystem(zerolog.Nop())
	in.Update(f.w)
	d.Update(f.w)

	if f.drag(t).Active {
		t.Fatalf("press outside the circle must not grab")
	}
}

func TestDragSweepOntoBallWhileHeld(t *testing.T) {
	f := newFixture(t)
	tr := f.transform(t)
	tr.X, tr.Y = 100, 100

	src := &scriptedPointer{samples: []PointerSample{
		{X: 10, Y: 10, Pressed: true},
		{X: 125, Y: 125, Pressed: true},
		{X: 135, Y: 125, Pressed: true},
	}}
	in := NewInputSystem(src)
	d := NewDragSystem(zerolog.Nop())

	in.Update(f.w)
	d.Update(f.w)
	if f.drag(t).Active {
		t.Fatalf("should not grab while away from the ball")
	}

	in.Update(f.w)
	d.Update(f.w)
	if !f.drag(t).Active {
		t.Fatalf("expected grab once a held pointer reaches the ball")
	}
	// the grab tick applies the delta that brought the cursor onto the ball
	if tr.X != 215 || tr.Y != 215 {
		t.Fatalf("unexpected position after grab (%v, %v)", tr.X, tr.Y)
	}

	in.Update(f.w)
	d.Update(f.w)
	if tr.X != 225 || tr.Y != 215 {
		t.Fatalf("unexpected position while dragging (%v, %v)", tr.X, tr.Y)
	}
}

func TestDragInstantReleaseThrowsNothing(t *testing.T) {
	f := newFixture(t)
	src := &scriptedPointer{samples: []PointerSample{
		{X: 25, Y: 25, Pressed: true},
		{X: 60, Y: 25},
	}}
	in := NewInputSystem(src)
	d := NewDragSystem(zerolog.Nop())

	in.Update(f.w)
	d.Update(f.w)
	in.Update(f.w)
	d.Update(f.w)

	kin := f.kinematics(t)
	if f.drag(t).Active || kin.Velocity.X != 0 || kin.Velocity.Y != 0 {
		t.Fatalf("release with no elapsed time must leave the ball at rest, got %+v", kin.Velocity)
	}
}

func TestDragNoPointerEntity(t *testing.T) {
	w := ecs.NewWorld()
	NewDragSystem(zerolog.Nop()).Update(w)
}

func TestDragRegrabAfterResetMidDrag(t *testing.T) {
	cases := []struct {
		name  string
		reset func(t *testing.T, f *fixture)
	}{
		{
			name: "reset_in_place",
			reset: func(t *testing.T, f *fixture) {
				if err := entity.ResetBall(f.w, f.ball, testSpec()); err != nil {
					t.Fatalf("reset: %v", err)
				}
			},
		},
		{
			name: "respawn",
			reset: func(t *testing.T, f *fixture) {
				ball, err := entity.RespawnBall(f.w, f.ball, testSpec())
				if err != nil {
					t.Fatalf("respawn: %v", err)
				}
				if f.w.IsAlive(f.ball) {
					t.Fatalf("old ball must be destroyed")
				}
				f.ball = ball
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			src := &scriptedPointer{samples: []PointerSample{
				{X: 25, Y: 25, Pressed: true},
				{X: 25, Y: 25, Pressed: true},
				{X: 25, Y: 25},
				{X: 25, Y: 25, Pressed: true},
				{X: 35, Y: 25, Pressed: true},
			}}
			in := NewInputSystem(src)
			d := NewDragSystem(zerolog.Nop())
			tick := func() {
				in.Update(f.w)
				d.Update(f.w)
			}

			tick()
			if !f.drag(t).Active {
				t.Fatalf("expected grab on first press")
			}

			c.reset(t, f)
			// button still down over the spawn point
			tick()
			tick()
			if f.drag(t).Active {
				t.Fatalf("release must leave the ball free")
			}

			tick()
			if !f.drag(t).Active {
				t.Fatalf("ball must be grabbable again after a reset mid-drag")
			}
			tick()
			if tr := f.transform(t); tr.X != 10 || tr.Y != 0 {
				t.Fatalf("expected re-grabbed ball carried to (10, 0), got (%v, %v)", tr.X, tr.Y)
			}
		})
	}
}

func TestDragIgnoresDestroyedHold(t *testing.T) {
	f := newFixture(t)
	src := &scriptedPointer{samples: []PointerSample{
		{X: 25, Y: 25, Pressed: true},
		{X: 30, Y: 25, Pressed: true},
	}}
	in := NewInputSystem(src)
	d := NewDragSystem(zerolog.Nop())

	in.Update(f.w)
	d.Update(f.w)
	f.w.DestroyEntity(f.ball)

	spare, err := entity.NewBall(f.w, testSpec())
	if err != nil {
		t.Fatalf("ball: %v", err)
	}
	in.Update(f.w)
	d.Update(f.w)

	drag, _ := ecs.Get(f.w, spare, component.DraggableComponent.Kind())
	if !drag.Active {
		t.Fatalf("a destroyed hold must not block grabbing another ball")
	}
}
