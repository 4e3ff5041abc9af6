package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/rs/zerolog"
)

// forceInputs are the globals a force script reads; it writes ax and ay.
var forceInputs = []string{"vx", "vy", "x", "y", "t", "gravity"}

type forceRuntime struct {
	generation int
	compiled   *tengo.Compiled
	failed     bool
}

// ForceScriptSystem replaces a free ball's acceleration with the output of its
// tengo script each tick.
type ForceScriptSystem struct {
	dt       float64
	elapsed  float64
	log      zerolog.Logger
	runtimes map[ecs.Entity]*forceRuntime
}

func NewForceScriptSystem(dt float64, log zerolog.Logger) *ForceScriptSystem {
	return &ForceScriptSystem{
		dt:       dt,
		log:      log,
		runtimes: make(map[ecs.Entity]*forceRuntime),
	}
}

func (s *ForceScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.elapsed += s.dt

	for e := range s.runtimes {
		if !ecs.Has(w, e, component.ForceScriptComponent.Kind()) {
			delete(s.runtimes, e)
		}
	}

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.KinematicsComponent.Kind(),
		component.ForceScriptComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, kin *component.Kinematics, fs *component.ForceScript) {
			if len(fs.Source) == 0 {
				return
			}
			if drag, ok := ecs.Get(w, e, component.DraggableComponent.Kind()); ok && drag.Active {
				return
			}

			rt, err := s.runtime(e, fs)
			if err != nil {
				s.log.Error().Err(err).Stringer("entity", e).Str("script", fs.Name).Msg("force script compile failed")
				return
			}
			if rt.failed {
				return
			}

			ax, ay, err := rt.eval(t, kin, s.elapsed)
			if err != nil {
				// stays quiet until the script is reloaded
				rt.failed = true
				s.log.Error().Err(err).Stringer("entity", e).Str("script", fs.Name).Msg("force script run failed")
				return
			}
			kin.Accel = cp.Vector{X: ax, Y: ay}
		})
}

func (s *ForceScriptSystem) runtime(e ecs.Entity, fs *component.ForceScript) (*forceRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.generation == fs.Generation {
		return rt, nil
	}
	compiled, err := CompileForceScript(fs.Source)
	rt := &forceRuntime{generation: fs.Generation, compiled: compiled, failed: err != nil}
	s.runtimes[e] = rt
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// CompileForceScript compiles src with the force script globals declared.
func CompileForceScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for _, name := range forceInputs {
		_ = script.Add(name, 0.0)
	}
	_ = script.Add("ax", 0.0)
	_ = script.Add("ay", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("force script: compile: %w", err)
	}
	return compiled, nil
}

func (rt *forceRuntime) eval(t *component.Transform, kin *component.Kinematics, elapsed float64) (float64, float64, error) {
	inputs := map[string]float64{
		"vx":      kin.Velocity.X,
		"vy":      kin.Velocity.Y,
		"x":       t.X,
		"y":       t.Y,
		"t":       elapsed,
		"gravity": kin.Gravity,
		"ax":      kin.Accel.X,
		"ay":      kin.Accel.Y,
	}
	for name, v := range inputs {
		if err := rt.compiled.Set(name, v); err != nil {
			return 0, 0, fmt.Errorf("force script: set %s: %w", name, err)
		}
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("force script: run: %w", err)
	}

	ax, err := numeric(rt.compiled.Get("ax"))
	if err != nil {
		return 0, 0, fmt.Errorf("force script: ax: %w", err)
	}
	ay, err := numeric(rt.compiled.Get("ay"))
	if err != nil {
		return 0, 0, fmt.Errorf("force script: ay: %w", err)
	}
	return ax, ay, nil
}

func numeric(v *tengo.Variable) (float64, error) {
	switch v.ValueType() {
	case "float":
		return v.Float(), nil
	case "int":
		return float64(v.Int()), nil
	default:
		return 0, fmt.Errorf("expected number, got %s", v.ValueType())
	}
}
