package main

import (
	"flag"
	"log"
	"runtime"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/input"
	"terrain-viewer/internal/viewer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "settings file (YAML)")
	seed := flag.Int("seed", -1, "override the starting seed")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if *seed >= 0 {
		settings.Terrain.Seed = int32(*seed)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	// Window setup
	window, err := setupWindow(settings.Window)
	if err != nil {
		panic(err)
	}

	inputManager := input.NewInputManager()

	app, err := viewer.NewApp(window, inputManager, settings)
	if err != nil {
		panic(err)
	}
	defer app.Cleanup()

	setupInputHandlers(window, app, inputManager)

	app.Run()
}
