// Command basic shows the configured camera mode over a few shapes, with an
// optional textured overlay. F12 saves a screenshot.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/config"
	"github.com/Faultbox/donkey/internal/logger"
	"github.com/Faultbox/donkey/pkg/camera"
	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/keys"
	"github.com/Faultbox/donkey/pkg/math"
	"github.com/Faultbox/donkey/pkg/picture"
	"github.com/Faultbox/donkey/pkg/window"
)

var flagImage = flag.String("image", "", "Image drawn in the top-right corner")

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

	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Source == "" {
		writeDefaultConfig()
	}

	if err := run(cfg, *flagImage); err != nil {
		logger.Error("basic failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("basic closed normally")
}

func run(cfg *config.Config, imagePath string) error {
	mode, err := cfg.CameraMode()
	if err != nil {
		return err
	}
	projection, err := cfg.CameraProjection()
	if err != nil {
		return err
	}

	win, err := window.InitWithConfig(window.Config{
		Title:            cfg.Window.Title,
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
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

	var tex *window.Texture
	if imagePath != "" {
		tex, err = loadTexture(win, imagePath)
		if err != nil {
			return err
		}
		defer tex.Close()
	}

	cam := camera.New(
		math.Vec3{X: 0, Y: 2, Z: 8},
		math.Vec3{},
		math.Vec3{Y: 1},
		cfg.Camera.FovY,
		projection,
	)
	if mode == camera.FirstPerson || mode == camera.Free {
		win.DisableCursor()
	}

	for !win.ShouldClose() {
		win.UpdateCamera(&cam, mode)

		win.BeginDrawing()
		win.ClearBackground(colors.RayWhite)

		win.BeginMode3D(cam)
		win.DrawCube(math.Vec3{}, 2, 2, 2, colors.Red)
		win.DrawSphere(math.Vec3{X: 4, Y: 1}, 1, colors.Blue)
		win.DrawCylinder(math.Vec3{X: -4}, math.Vec3{X: -4, Y: 3}, 0.75, colors.Gold)
		win.DrawCube(math.Vec3{Y: -0.05}, 20, 0.1, 20, colors.LightGray)
		win.EndMode3D()

		if tex != nil {
			w, _ := win.Size()
			win.DrawTexture(tex, w-tex.Width()-10, 10, colors.White)
		}
		status := fmt.Sprintf("%s camera, %d FPS", mode, win.FPS())
		if err := win.DrawText(status, 10, 10, 20, colors.DarkGray); err != nil {
			return err
		}

		if win.KeyPressed(keys.F12) {
			if err := win.TakeScreenshot(""); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
		}
		win.EndDrawing()
	}
	return nil
}

// writeDefaultConfig leaves a config file to edit on the first run. Flag
// overrides are not persisted.
func writeDefaultConfig() {
	if err := config.Default().Save(); err != nil {
		logger.Warn("could not write default config", zap.Error(err))
		return
	}
	logger.Info("wrote default config", zap.String("path", config.DefaultPath()))
}

func loadTexture(win *window.Window, path string) (*window.Texture, error) {
	img, err := picture.Load(path)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	logger.Info("image loaded",
		zap.String("path", path),
		zap.String("format", img.Format()),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
	)
	return win.LoadTextureFromImage(img)
}
