package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"raycastdemo/internal/game"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/raycast.json", "scene file to load")
	savePath := flag.String("save", "", "write the scene here on exit")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if _, err := os.Stat(filepath.Join(execDir, *scenePath)); err == nil {
				os.Chdir(execDir)
			}
		}
	}

	g := game.New(game.Config{
		ScenePath: *scenePath,
		SavePath:  *savePath,
		Width:     int32(*width),
		Height:    int32(*height),
	})
	if err := g.Load(); err != nil {
		log.Fatalf("raycastdemo: %v", err)
	}
	g.Run()
}
