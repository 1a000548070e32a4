package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/freecam/obj"
	"github.com/milk9111/freecam/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode and verbose freecam logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	modeName := flag.String("mode", "field", "starting game mode: field, event or battle")
	pathFile := flag.String("path", "", "keyframe path to load at start (.p5path or .yaml)")
	watch := flag.Bool("watch", false, "hot reload prefabs/*.yaml and prefabs/scripts/*.tengo")
	flag.Parse()

	mode, err := obj.ParseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}
	fcSpec, err := prefabs.LoadFreecamSpec()
	if err != nil {
		log.Fatal(err)
	}
	sbSpec, err := prefabs.LoadSandboxSpec()
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("freecam sandbox")

	game, err := NewGame(fcSpec, sbSpec, Options{
		Debug:    *debug,
		Mode:     mode,
		PathFile: *pathFile,
		Watch:    *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
