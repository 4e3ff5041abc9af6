package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dragball/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefabName := flag.String("prefab", "ball", "ball prefab name in prefabs/ (.yaml optional)")
	watch := flag.Bool("watch", false, "hot reload prefabs from disk")
	flag.Parse()

	logger := common.NewLogger(*debug)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*prefabName, *debug, *watch, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.spec.Window.Width, game.spec.Window.Height)
	ebiten.SetWindowTitle(game.spec.Window.Title)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
