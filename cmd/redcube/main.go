// Command redcube draws a red cube and lets WASD slide the camera around it.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/config"
	"github.com/Faultbox/donkey/internal/logger"
	"github.com/Faultbox/donkey/pkg/camera"
	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/keys"
	"github.com/Faultbox/donkey/pkg/math"
	"github.com/Faultbox/donkey/pkg/window"
)

const (
	width    = 800
	height   = 600
	title    = "red cube"
	cubeSize = 1.0
)

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

	if err := run(cfg); err != nil {
		logger.Error("red cube failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("red cube closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.InitWithConfig(window.Config{
		Title:            title,
		Width:            width,
		Height:           height,
		Fullscreen:       cfg.Window.Fullscreen,
		VSync:            cfg.Window.VSync,
		TargetFPS:        cfg.Window.TargetFPS,
		ScreenshotDir:    cfg.Screenshots.Dir,
		ScreenshotPrefix: cfg.Screenshots.Prefix,
	})
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer win.Close()

	cam := camera.New(
		math.Vec3{Z: -cubeSize},
		math.Vec3{},
		math.Vec3{Y: 1},
		90,
		camera.Perspective,
	)
	background := colors.Hex(0x181818AA)
	speed := float32(cubeSize)

	for !win.ShouldClose() {
		dt := win.FrameTime()
		if win.KeyDown(keys.W) {
			cam.Position.Z += speed * dt
		}
		if win.KeyDown(keys.S) {
			cam.Position.Z -= speed * dt
		}
		if win.KeyDown(keys.D) {
			cam.Position.X += speed * dt
		}
		if win.KeyDown(keys.A) {
			cam.Position.X -= speed * dt
		}

		win.BeginDrawing()
		win.ClearBackground(background)
		win.BeginMode3D(cam)
		win.UpdateCamera(&cam, camera.ThirdPerson)
		win.DrawCube(math.Vec3{}, cubeSize, cubeSize, cubeSize, colors.Hex(0xFF0000FF))
		win.EndMode3D()
		win.EndDrawing()
	}
	return nil
}
