package system

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragball/ecs"
	"github.com/rs/zerolog"
)

func TestDebugText(t *testing.T) {
	f := newFixture(t)
	tr := f.transform(t)
	tr.X, tr.Y = 12.5, 40
	f.kinematics(t).Velocity = cp.Vector{X: 3, Y: 4}
	f.w.Events().Push(ecs.Event{Type: ecs.EventBallReleased, Entity: f.ball})
	NewStatsSystem(zerolog.Nop()).Update(f.w)

	text := DebugText(f.w, 60)
	for _, want := range []string{
		"FPS: 60.00",
		"Throws: 1",
		"pos: (12.5, 40.0)",
		"|v|=5.00",
		"acc: (0.00, 9.80)",
		"dragging: false",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("debug text missing %q:\n%s", want, text)
		}
	}
}
