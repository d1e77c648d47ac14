package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/pulse/internal/config"
	"github.com/san-kum/pulse/internal/heart"
)

// Theme Colors (Monochrome chrome, animated heart)
var (
	ColBg      = rl.NewColor(17, 17, 17, 255)    // #111
	ColText    = rl.NewColor(255, 255, 255, 255) // Help line
	ColTextDim = rl.NewColor(140, 140, 140, 255)
)

const helpText = "Space/Click: Pause | S: Screenshot | Esc: Exit"

type App struct {
	cfg     *config.Config
	osc     *heart.Oscillator
	outline []heart.Point // unit-scale curve, scaled per frame
	paused  bool
}

// NewApp builds the animation state for an open window.
func NewApp(cfg *config.Config) *App {
	steps := cfg.Steps
	if steps <= 0 {
		steps = config.DefaultSteps
	}
	return &App{
		cfg:     cfg,
		osc:     heart.NewOscillator(cfg.Period, cfg.Depth, cfg.BaseHue, cfg.TickInterval()),
		outline: heart.Outline(1.0, steps),
	}
}

// Run opens the window and blocks in the update-draw loop until the
// window is closed. Returns an error instead of opening a window when
// the graphics stack is unavailable.
func Run(cfg *config.Config) error {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "pulse")
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib could not create a window (no display or OpenGL support); install graphics drivers or run with --ascii")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	app := NewApp(cfg)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return nil
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyS) {
		rl.TakeScreenshot(fmt.Sprintf("pulse_%s.png", time.Now().Format("20060102_150405")))
	}
	if !a.paused {
		a.osc.Advance()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawHeart()

	w := rl.GetScreenWidth()
	tw := rl.MeasureText(helpText, 10)
	rl.DrawText(helpText, int32(w/2)-tw/2, 10, 10, ColText)

	if a.paused {
		msg := "Paused - Press Space or Click"
		mw := rl.MeasureText(msg, 20)
		rl.DrawText(msg, int32(w/2)-mw/2, int32(rl.GetScreenHeight()/2), 20, ColTextDim)
	}

	rl.EndDrawing()
}
