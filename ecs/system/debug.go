package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
)

func DrawDebugOverlay(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, DebugText(w, ebiten.ActualFPS()), 10, 10)
}

// DebugText formats the state of every ball for the overlay.
func DebugText(w *ecs.World, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.2f\n", fps)

	if se, ok := w.First(component.StatsComponent.Kind()); ok {
		stats, _ := ecs.Get(w, se, component.StatsComponent.Kind())
		fmt.Fprintf(&b, "Throws: %d  Bounces: %d  Last: %s\n", stats.Throws, stats.Bounces, stats.LastBounce)
	}

	for _, e := range w.Query(component.BallTagComponent.Kind(), component.TransformComponent.Kind(), component.KinematicsComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		kin, _ := ecs.Get(w, e, component.KinematicsComponent.Kind())
		fmt.Fprintf(&b, "Ball %s\n", e)
		fmt.Fprintf(&b, "  pos: (%.1f, %.1f)\n", t.X, t.Y)
		fmt.Fprintf(&b, "  vel: (%.2f, %.2f) m/s  |v|=%.2f\n", kin.Velocity.X, kin.Velocity.Y, kin.Velocity.Length())
		fmt.Fprintf(&b, "  acc: (%.2f, %.2f) m/s^2\n", kin.Accel.X, kin.Accel.Y)
		fmt.Fprintf(&b, "  dir: (%d, %d)\n", kin.DirX, kin.DirY)
		if drag, ok := ecs.Get(w, e, component.DraggableComponent.Kind()); ok {
			fmt.Fprintf(&b, "  dragging: %v  time: %.2fs\n", drag.Active, drag.Elapsed)
		}
	}
	return b.String()
}
