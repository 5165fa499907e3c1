// Command snake moves a green square over a checkered board with WASD.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/config"
	"github.com/Faultbox/donkey/internal/logger"
	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/window"
)

const (
	width  = 800
	height = 600
	title  = "snake"
	tile   = 40
)

var snakeColor = colors.Green

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	background := colors.Hex(0x181818AA)
	var s snake

	err = window.RunWithConfig(window.Config{
		Title:     title,
		Width:     width,
		Height:    height,
		VSync:     cfg.Window.VSync,
		TargetFPS: cfg.Window.TargetFPS,
	}, func(win *window.Window) {
		win.Draw(func(canvas *window.Canvas) {
			canvas.ClearBackground(background)
			for x := 0; x < width; x += tile {
				for y := 0; y < height; y += tile {
					if darkTile(x, y, tile) {
						canvas.DrawRectangle(x, y, tile, tile, colors.Red)
					}
				}
			}
			canvas.DrawRectangle(s.x, s.y, tile, tile, snakeColor)
			s.step(win, width, height, tile)
		})
	})
	if err != nil {
		logger.Error("snake failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("snake closed normally")
}
