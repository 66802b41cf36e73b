// Package desktop runs the game in a GLFW window.
package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/assets"
	"gridsnake/internal/audio"
	"gridsnake/internal/game"
	"gridsnake/internal/gfx"
)

// soundDrain bounds how long shutdown waits for the last sound effect.
const soundDrain = time.Second

// Run opens the window and plays one game until it ends or the window closes.
// Errors are setup failures; a finished game returns nil.
func Run(cfg game.Config, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}

	window, err := gfx.OpenWindow(cfg.Title, int(cfg.Width), int(cfg.Height))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl ready",
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	var sound *audio.System
	if !cfg.Mute {
		sound, err = audio.New(0.6)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
			sound = nil
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := gfx.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	loadTextures(rend, cfg.AssetDir, log)

	events := game.NewEventBus()
	subscribe(events, sound, log)

	g, err := game.NewGame(cfg, game.NewRand(cfg.Seed), events)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	log.Debug("game started", "seed", cfg.Seed, "tick", cfg.TickInterval())

	keys := game.NewKeyState()
	stats := game.NewFrameStats(0.5)
	var views []game.SpriteView

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		gfx.PollKeys(window, keys)
		if keys.Down(game.KeyEscape) {
			g.Quit()
		}

		now := glfw.GetTime()
		dt := now - last
		last = now

		g.Frame(dt, keys)
		if g.Over() {
			window.SetShouldClose(true)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			rend.BeginFrame(fbW, fbH)
			views = g.Views(views)
			rend.Draw(views)
			window.SwapBuffers()
		}

		if stats.Tick(dt) {
			window.SetTitle(fmt.Sprintf("%s | length %d | %.0f fps", cfg.Title, g.Len(), stats.FPS()))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), soundDrain)
	defer cancel()
	if err := sound.Wait(ctx); err != nil {
		log.Debug("sound still playing at exit", "err", err)
	}
	return nil
}

// loadTextures uploads every sprite texture. A missing file is logged and
// leaves that kind untextured.
func loadTextures(rend *gfx.Renderer, dir string, log *slog.Logger) {
	files := []struct {
		kind game.SpriteKind
		path string
	}{
		{game.KindBackground, assets.BackgroundPath},
		{game.KindHead, assets.HeadPath},
		{game.KindFood, assets.FoodPath},
		{game.KindBody, assets.BodyPath},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.path)
		tex, err := gfx.LoadTexture(path)
		if err != nil {
			log.Warn("texture load failed", "path", path, "err", err)
		}
		rend.SetTexture(f.kind, tex)
	}
}

func subscribe(events *game.EventBus, sound *audio.System, log *slog.Logger) {
	events.Subscribe(game.EventStarted, func(game.Event) {
		sound.Play(audio.SoundStart)
	})
	events.Subscribe(game.EventFruitEaten, func(e game.Event) {
		sound.Play(audio.SoundEat)
		log.Debug("fruit eaten", "x", e.X, "y", e.Y, "length", e.Len)
	})
	events.Subscribe(game.EventGameOver, func(e game.Event) {
		if e.Cause != game.CauseQuit {
			sound.Play(audio.SoundGameOver)
		}
		log.Info("game over", "cause", e.Cause.String(), "length", e.Len)
	})
}
