package system

import (
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/rs/zerolog"
)

// StatsSystem drains the tick's events into the Stats counters.
type StatsSystem struct {
	log zerolog.Logger
}

func NewStatsSystem(log zerolog.Logger) *StatsSystem {
	return &StatsSystem{log: log}
}

func (s *StatsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}

	se, ok := w.First(component.StatsComponent.Kind())
	if !ok {
		return
	}
	stats, _ := ecs.Get(w, se, component.StatsComponent.Kind())

	for _, evt := range events {
		switch evt.Type {
		case ecs.EventBallReleased:
			stats.Throws++
		case ecs.EventBallBounced:
			stats.Bounces++
			if b, ok := evt.Data.(ecs.BounceEvent); ok {
				stats.LastBounce = string(b.Edge)
				s.log.Debug().Stringer("entity", evt.Entity).Str("edge", string(b.Edge)).Float64("velocity", b.Velocity).Msg("bounce")
			}
		}
	}
}
