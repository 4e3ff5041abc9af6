// Command throwsim runs the ball physics without a window and prints the
// trajectory of a throw as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragball/common"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/component"
	"github.com/milk9111/dragball/ecs/entity"
	"github.com/milk9111/dragball/ecs/system"
	"github.com/milk9111/dragball/prefabs"
	"github.com/rs/zerolog"
)

type simConfig struct {
	VelocityX float64
	VelocityY float64
	StartX    float64
	StartY    float64
	Seconds   float64
	TPS       int
	Every     int
}

type sample struct {
	Tick    int
	Time    float64
	X, Y    float64
	VX, VY  float64
	Bounces int
}

func main() {
	prefabName := flag.String("prefab", "ball", "ball prefab name in prefabs/")
	vx := flag.Float64("vx", 3, "initial horizontal velocity in m/s")
	vy := flag.Float64("vy", -4, "initial vertical velocity in m/s")
	x := flag.Float64("x", 0, "start x in pixels (defaults to the prefab spawn)")
	y := flag.Float64("y", 0, "start y in pixels (defaults to the prefab spawn)")
	seconds := flag.Float64("seconds", 5, "simulated duration")
	tps := flag.Int("tps", 60, "ticks per second")
	every := flag.Int("every", 6, "emit one row every N ticks")
	debug := flag.Bool("debug", false, "log bounces")
	flag.Parse()

	spec, err := prefabs.LoadBallSpec(*prefabName)
	if err != nil {
		log.Fatal(err)
	}

	cfg := simConfig{
		VelocityX: *vx,
		VelocityY: *vy,
		StartX:    spec.Transform.X,
		StartY:    spec.Transform.Y,
		Seconds:   *seconds,
		TPS:       *tps,
		Every:     *every,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			cfg.StartX = *x
		case "y":
			cfg.StartY = *y
		}
	})

	samples, err := simulate(spec, cfg, common.NewLogger(*debug))
	if err != nil {
		log.Fatal(err)
	}
	if err := writeCSV(os.Stdout, samples); err != nil {
		log.Fatal(err)
	}
}

func simulate(spec *prefabs.BallSpec, cfg simConfig, logger zerolog.Logger) ([]sample, error) {
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("throwsim: tps must be positive, got %d", cfg.TPS)
	}
	if cfg.Every <= 0 {
		cfg.Every = 1
	}

	w := ecs.NewWorld()
	field, err := entity.NewPlayfield(w, float64(spec.Window.Width), float64(spec.Window.Height))
	if err != nil {
		return nil, err
	}
	ball, err := entity.NewBall(w, spec)
	if err != nil {
		return nil, err
	}

	t, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	kin, _ := ecs.Get(w, ball, component.KinematicsComponent.Kind())
	stats, _ := ecs.Get(w, field, component.StatsComponent.Kind())
	t.X, t.Y = cfg.StartX, cfg.StartY
	kin.Velocity = cp.Vector{X: cfg.VelocityX, Y: cfg.VelocityY}

	dt := 1.0 / float64(cfg.TPS)
	scheduler := ecs.NewScheduler(
		system.NewForceScriptSystem(dt, logger),
		system.NewKinematicsSystem(dt),
		system.NewStatsSystem(logger),
	)

	ticks := int(cfg.Seconds * float64(cfg.TPS))
	samples := make([]sample, 0, ticks/cfg.Every+2)
	record := func(tick int) {
		samples = append(samples, sample{
			Tick:    tick,
			Time:    float64(tick) * dt,
			X:       t.X,
			Y:       t.Y,
			VX:      kin.Velocity.X,
			VY:      kin.Velocity.Y,
			Bounces: stats.Bounces,
		})
	}

	record(0)
	for tick := 1; tick <= ticks; tick++ {
		scheduler.Update(w)
		if tick%cfg.Every == 0 || tick == ticks {
			record(tick)
		}
	}
	return samples, nil
}

func writeCSV(out io.Writer, samples []sample) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"tick", "t", "x", "y", "vx", "vy", "bounces"}); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	for _, s := range samples {
		row := []string{strconv.Itoa(s.Tick), f(s.Time), f(s.X), f(s.Y), f(s.VX), f(s.VY), strconv.Itoa(s.Bounces)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
