package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dragball/ecs"
	"github.com/milk9111/dragball/ecs/entity"
	"github.com/milk9111/dragball/ecs/system"
	"github.com/milk9111/dragball/prefabs"
	"github.com/rs/zerolog"
)

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	log zerolog.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	specName string
	spec     *prefabs.BallSpec
	ball     ecs.Entity

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	sizeMu        sync.Mutex
	width, height float64
}

func NewGame(specName string, debug, watch bool, log zerolog.Logger) (*Game, error) {
	spec, err := prefabs.LoadBallSpec(specName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    debug,
		log:      log,
		world:    ecs.NewWorld(),
		render:   system.NewRenderSystem(),
		specName: specName,
		spec:     spec,
		width:    float64(spec.Window.Width),
		height:   float64(spec.Window.Height),
	}

	if _, err := entity.NewPlayfield(g.world, g.width, g.height); err != nil {
		return nil, err
	}
	g.ball, err = entity.NewBall(g.world, spec)
	if err != nil {
		return nil, err
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(nil),
		system.NewBoundsSystem(g.layoutSize),
		system.NewDragSystem(log),
		system.NewForceScriptSystem(dt, log),
		system.NewKinematicsSystem(dt),
		system.NewStatsSystem(log),
	)

	g.pauseUI = NewPauseUI(g)

	if watch {
		g.watcher, err = newPrefabWatcher()
		if err != nil {
			log.Warn().Err(err).Msg("prefab hot reload disabled")
		}
	}

	log.Info().Str("prefab", specName).Str("ball", g.ball.String()).Msg("game ready")
	return g, nil
}

func newPrefabWatcher() (*prefabs.Watcher, error) {
	dirs := []string{prefabs.DiskDir}
	scripts := filepath.Join(prefabs.DiskDir, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		dirs = append(dirs, scripts)
	}
	return prefabs.NewWatcher(dirs...)
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetBall()
	}

	g.pollWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawDebugOverlay(g.world, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sizeMu.Lock()
	g.width = float64(outsideWidth)
	g.height = float64(outsideHeight)
	g.sizeMu.Unlock()
	return outsideWidth, outsideHeight
}

func (g *Game) layoutSize() (float64, float64) {
	g.sizeMu.Lock()
	defer g.sizeMu.Unlock()
	return g.width, g.height
}

func (g *Game) resetBall() {
	ball, err := entity.RespawnBall(g.world, g.ball, g.spec)
	if err != nil {
		g.log.Error().Err(err).Msg("reset ball")
		return
	}
	g.ball = ball
	g.log.Info().Stringer("ball", ball).Msg("ball reset")
}

func (g *Game) requestQuit() {
	g.quit = true
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Debug().Str("file", name).Msg("prefab changed")
			if err := g.reloadSpec(); err != nil {
				g.log.Error().Err(err).Str("file", name).Msg("prefab reload failed")
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn().Err(err).Msg("prefab watcher")
			}
		default:
			return
		}
	}
}

func (g *Game) reloadSpec() error {
	spec, err := prefabs.LoadBallSpec(g.specName)
	if err != nil {
		return err
	}
	if err := entity.ApplyBallSpec(g.world, g.ball, spec); err != nil {
		return fmt.Errorf("apply %s: %w", g.specName, err)
	}
	g.spec = spec
	g.log.Info().Str("prefab", g.specName).Msg("prefab reloaded")
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
