// Package window owns the native window and its OpenGL context. It runs the
// frame loop and exposes input queries plus 2D and 3D drawing.
//
// SDL and OpenGL must be driven from the main thread; the package locks the
// OS thread at init. Only one Window may be live at a time.
package window

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/cstr"
	"github.com/Faultbox/donkey/internal/engine/frame"
	"github.com/Faultbox/donkey/internal/engine/screenshot"
	"github.com/Faultbox/donkey/internal/logger"
	"github.com/Faultbox/donkey/pkg/input"
	"github.com/Faultbox/donkey/pkg/keys"
	"github.com/Faultbox/donkey/pkg/math"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// ErrAlreadyInitialized is returned by Init while another Window is live.
var ErrAlreadyInitialized = errors.New("window already initialized")

var active atomic.Bool

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	TargetFPS  int // 0 = unlimited

	ScreenshotDir    string
	ScreenshotPrefix string
}

// Window wraps the SDL2 window, its OpenGL context and the renderer.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	renderer  *renderer
	log       *zap.Logger

	input   *input.State
	gamepad *sdl.GameController
	exitKey keys.Key

	timer  *frame.Timer
	scopes frame.Tracker
	shots  *screenshot.Writer

	viewProj    math.Mat4
	width       int
	height      int
	shouldClose bool
	closed      bool
}

// Init opens a resizable window with the given size and title.
func Init(width, height int, title string) (*Window, error) {
	return InitWithConfig(Config{Title: title, Width: width, Height: height})
}

// InitWithConfig opens a window. A title containing NUL returns *cstr.NulError.
func InitWithConfig(cfg Config) (*Window, error) {
	if err := cstr.Check(cfg.Title); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if !active.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	w, err := open(cfg)
	if err != nil {
		active.Store(false)
		return nil, err
	}
	return w, nil
}

func open(cfg Config) (*Window, error) {
	w := &Window{
		config:  cfg,
		log:     logger.Named("window"),
		input:   input.New(),
		exitKey: keys.Escape,
		timer:   frame.NewTimer(),
		shots:   screenshot.NewWriter(cfg.ScreenshotDir, cfg.ScreenshotPrefix),
		width:   cfg.Width,
		height:  cfg.Height,
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 core is the newest profile macOS offers.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	ww, wh := w.sdlWindow.GetSize()
	w.width, w.height = int(ww), int(wh)

	w.renderer, err = newRenderer(w.log, w.width, w.height)
	if err != nil {
		sdl.GLDeleteContext(w.glContext)
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	w.updateViewport()
	w.timer.SetTargetFPS(cfg.TargetFPS)

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", w.width),
		zap.Int("height", w.height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("target_fps", cfg.TargetFPS),
	)

	return w, nil
}

// Close destroys the window and shuts SDL down. Further calls are no-ops;
// no other method may be used afterwards.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.log.Info("closing window", zap.Uint64("frames", w.timer.Frames()))

	if w.renderer != nil {
		w.renderer.close()
	}
	if w.gamepad != nil {
		w.gamepad.Close()
		w.gamepad = nil
	}
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
	active.Store(false)
}

// ShouldClose processes pending events and reports whether the user asked
// to close the window. Call it once per frame.
func (w *Window) ShouldClose() bool {
	w.pollEvents()
	return w.shouldClose
}

// SetExitKey sets the key that requests close. keys.Null disables it.
func (w *Window) SetExitKey(k keys.Key) {
	w.exitKey = k
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	if err := cstr.Check(title); err != nil {
		return err
	}
	w.sdlWindow.SetTitle(title)
	return nil
}

// SetTargetFPS caps the frame rate. Zero removes the cap.
func (w *Window) SetTargetFPS(fps int) {
	w.timer.SetTargetFPS(fps)
}

// FrameTime returns the duration of the last frame in seconds.
func (w *Window) FrameTime() float32 {
	return w.timer.FrameTime()
}

// FPS returns the frame rate implied by the last frame.
func (w *Window) FPS() int {
	return w.timer.FPS()
}

// Time returns seconds elapsed since Init.
func (w *Window) Time() float64 {
	return w.timer.Elapsed().Seconds()
}

func (w *Window) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
	w.updateViewport()
	w.log.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
}

func (w *Window) updateViewport() {
	dw, dh := w.sdlWindow.GLGetDrawableSize()
	w.renderer.resize(w.width, w.height, int(dw), int(dh))
}

// misuse reports a drawing call made in the wrong scope. Each op is logged
// once; the call itself is ignored by the caller.
func (w *Window) misuse(op string, err error) {
	if w.scopes.FirstMisuse(op) {
		w.log.Warn("drawing call ignored", zap.String("op", op), zap.Error(err))
	}
}
