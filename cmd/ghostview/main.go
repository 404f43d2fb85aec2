package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/decode"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/game"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/scene/playback"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/infrastructure/config"
)

// loadConfig reads the given config file, or the embedded one when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewLoader(filepath.Dir(path)).LoadAllFile(filepath.Base(path))
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

func readGhost(file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	return string(data), err
}

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Config file (default: embedded configs/ghost.json)")
	fileFlag := flag.String("file", "", "Ghost recording to play, stdin when empty")
	speedFlag := flag.Float64("speed", 0, "Playback speed multiplier (overrides config)")
	flag.Parse()

	file := *fileFlag
	if file == "" && flag.NArg() > 0 {
		file = flag.Arg(0)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *speedFlag > 0 {
		cfg.Viewer.Speed = *speedFlag
	}

	input, err := readGhost(file)
	if err != nil {
		log.Fatalf("Failed to read ghost: %v", err)
	}

	var opts []decode.Option
	if cfg.Decode.StrictDuration {
		opts = append(opts, decode.WithDurationCheck(cfg.Decode.DurationTolerance))
	}
	g, err := decode.Decode(input, opts...)
	if err != nil {
		log.Fatalf("Failed to decode ghost: %v", err)
	}
	log.Printf("Loaded %s: %d frames, %.3fs", g.LevelName, g.Len(), g.TotalTime)

	// Create game
	v := cfg.Viewer
	viewer := playback.New(g, v)
	gm := game.New(viewer, v.ScreenWidth, v.ScreenHeight, v.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(v.ScreenWidth*v.Scale, v.ScreenHeight*v.Scale)
	ebiten.SetWindowTitle("Ghost Viewer - " + g.LevelName)
	ebiten.SetTPS(v.Framerate)

	// Run game
	if err := ebiten.RunGame(gm); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
