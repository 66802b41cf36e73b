// Command snake is a grid snake game drawn with OpenGL.
//
// Environment: SNAKE_CONFIG (JSON config file), SNAKE_SEED, SNAKE_ASSETS,
// SNAKE_MUTE, SNAKE_AVOID_BODY, SNAKE_LOG_LEVEL.
package main

import (
	"flag"
	"os"

	"gridsnake/internal/desktop"
	"gridsnake/internal/game"
	"gridsnake/internal/logging"
)

func main() {
	title := flag.String("title", "", "window title")
	flag.Parse()

	log := logging.New()

	cfg := game.DefaultConfig()
	if path := os.Getenv("SNAKE_CONFIG"); path != "" {
		loaded, err := game.LoadConfig(path)
		if err != nil {
			log.Error("config", "path", path, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *title != "" {
		cfg.Title = *title
	}

	if err := desktop.Run(cfg, log); err != nil {
		log.Error("snake", "err", err)
		os.Exit(1)
	}
}
