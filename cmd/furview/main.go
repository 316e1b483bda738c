// furview renders a mesh with shell-and-fin fur and lets you tune it live.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-fur/internal/assets"
	"github.com/Faultbox/midgard-fur/internal/config"
	"github.com/Faultbox/midgard-fur/internal/engine/camera"
	"github.com/Faultbox/midgard-fur/internal/engine/input"
	"github.com/Faultbox/midgard-fur/internal/engine/renderer"
	"github.com/Faultbox/midgard-fur/internal/engine/screenshot"
	"github.com/Faultbox/midgard-fur/internal/engine/window"
	"github.com/Faultbox/midgard-fur/internal/fur"
	"github.com/Faultbox/midgard-fur/internal/fur/shell"
	"github.com/Faultbox/midgard-fur/internal/logger"
)

const windowTitle = "Midgard Fur"

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

	logger.Info("=== Midgard Fur Viewer ===")
	if err := cfg.Validate(); err != nil {
		// out-of-range values are clamped, so keep going
		logger.Warn("config has problems", zap.Error(err))
	}

	if err := run(cfg); err != nil {
		logger.Error("viewer failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	meshes := assets.NewManager()
	defer meshes.Close()
	if path := config.Path(); path != "" {
		meshes.AddSearchDir(filepath.Dir(path))
	}

	src, err := meshes.Load(cfg.Mesh.Source())
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	pool := shell.NewPool(cfg.Shell.PoolSize, cfg.Fin.Workers)
	defer pool.Purge()

	assembly := fur.New(
		fur.WithLogger(logger.Named("fur")),
		fur.WithPool(pool),
		fur.WithWorkers(cfg.Fin.Workers),
		fur.WithWindSeed(cfg.Wind.Seed),
		fur.WithSettings(cfg.FurSettings()),
	)
	defer assembly.Close()

	if err := assembly.SetMesh(src); err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    4,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dw, dh := win.DrawableSize()
	rend, err := renderer.New(renderer.DefaultConfig(dw, dh))
	if err != nil {
		return err
	}
	defer rend.Close()

	cam := camera.NewOrbitCamera()
	cam.FitToBounds(src.Bounds())

	v := &viewer{
		cfg:      cfg,
		meshes:   meshes,
		assembly: assembly,
		window:   win,
		renderer: rend,
		camera:   cam,
		input:    input.New(),
		shots:    screenshot.New("screenshots", "fur"),
		reloads:  make(chan *config.Config, 1),

		shellTaper: cfg.Shell.Taper.Preset,
		finTaper:   cfg.Fin.Taper.Preset,
	}

	if path := config.Path(); path != "" {
		if err := config.Watch(ctx, path, v.onReload); err != nil {
			logger.Warn("config hot reload disabled", zap.Error(err))
		} else {
			logger.Info("watching config", zap.String("path", path))
		}
	}

	v.loop(ctx)
	return nil
}

type viewer struct {
	cfg      *config.Config
	meshes   *assets.Manager
	assembly *fur.Assembly
	window   *window.Window
	renderer *renderer.Renderer
	camera   *camera.OrbitCamera
	input    *input.Input
	shots    *screenshot.Capture

	reloads chan *config.Config

	shellTaper string
	finTaper   string
	wantShot   bool
	quit       bool
}

// onReload runs on the watcher goroutine and hands the config to the loop.
func (v *viewer) onReload(cfg *config.Config, err error) {
	if err != nil {
		logger.Warn("config reload failed", zap.Error(err))
		return
	}
	select {
	case v.reloads <- cfg:
	default:
		// drop the stale pending one
		select {
		case <-v.reloads:
		default:
		}
		v.reloads <- cfg
	}
}

func (v *viewer) loop(ctx context.Context) {
	var frameLimit time.Duration
	if v.cfg.Window.FPSLimit > 0 {
		frameLimit = time.Second / time.Duration(v.cfg.Window.FPSLimit)
	}

	last := time.Now()
	fpsStart, frames := last, 0

	for ctx.Err() == nil {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart

		if v.input.Update() {
			return
		}
		v.handleEvents()
		if v.quit {
			return
		}

		select {
		case cfg := <-v.reloads:
			v.applyConfig(cfg)
		default:
		}

		v.assembly.Update(dt)
		v.renderer.Draw(v.assembly.DrawSet(), v.camera)

		if v.wantShot {
			v.wantShot = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frames++
		if elapsed := time.Since(fpsStart); elapsed >= time.Second {
			v.updateTitle(float64(frames) / elapsed.Seconds())
			fpsStart, frames = time.Now(), 0
		}

		if frameLimit > 0 {
			if remaining := frameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

func (v *viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)
		case input.EventMouseMove:
			if v.input.IsButtonDown(buttonLeft) {
				v.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}
		case input.EventMouseWheel:
			v.camera.HandleZoom(e.Wheel)
		case input.EventKeyDown:
			v.handleKey(e)
		}
	}
}

// applyConfig takes a hot-reloaded config. Only the mesh and fur
// settings are live; window changes need a restart.
func (v *viewer) applyConfig(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.Warn("reloaded config has problems", zap.Error(err))
	}

	if cfg.Mesh != v.cfg.Mesh {
		if cfg.Mesh.Path != "" {
			v.meshes.Forget(cfg.Mesh.Path)
		}
		src, err := v.meshes.Load(cfg.Mesh.Source())
		if err != nil {
			logger.Warn("keeping current mesh", zap.Error(err))
			cfg.Mesh = v.cfg.Mesh
		} else if err := v.assembly.SetMesh(src); err != nil {
			logger.Warn("keeping current mesh", zap.Error(err))
			cfg.Mesh = v.cfg.Mesh
		} else {
			v.camera.FitToBounds(src.Bounds())
		}
	}

	changed := v.assembly.Configure(cfg.FurSettings())
	v.cfg = cfg
	logger.Info("config reloaded", zap.Bool("furChanged", changed))
}

func (v *viewer) screenshot() {
	w, h := v.window.DrawableSize()
	path, err := v.shots.SavePixels(screenshot.ReadFramebuffer(w, h), w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *viewer) updateTitle(fps float64) {
	if !v.cfg.Window.ShowFPS {
		return
	}
	stats := v.renderer.Stats()
	v.window.SetTitle(fmt.Sprintf("%s | %.0f fps | %d shells | %d fins | wind %s",
		windowTitle, fps, stats.ShellLayers, stats.Fins, onOff(v.assembly.Settings().Wind.Enabled)))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
