package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/seismograph/internal/sim"
	"github.com/san-kum/seismograph/internal/trace"
)

var (
	ColBg      = rl.NewColor(24, 24, 28, 255)
	ColRoller  = rl.NewColor(64, 64, 64, 255)
	ColBase    = rl.NewColor(90, 90, 95, 255)
	ColPaper   = rl.NewColor(255, 254, 240, 255)
	ColUnder   = rl.NewColor(200, 198, 185, 255)
	ColTrace   = rl.NewColor(210, 40, 30, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
)

const (
	windowW = 1280
	windowH = 720
	// drum cylinder overhang past the band edges
	rollerOverhang = 0.25
	rollerSides    = 48
)

type App struct {
	Driver *sim.Driver
	Logger *log.Logger
	Camera rl.Camera3D

	// orbit state, eased towards the targets each frame
	yaw, pitch, dist                   float64
	yawTarget, pitchTarget, distTarget float64

	drumTex, beltTex       rl.Texture2D
	drumPixels, beltPixels []color.RGBA
	decor                  []Decor
	lastErr                error
}

func initWindow() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowW, windowH, "seismograph")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// NewApp needs an open window: it allocates the paper textures and loads
// decor models.
func NewApp(d *sim.Driver, logger *log.Logger) *App {
	a := &App{
		Driver:      d,
		Logger:      logger,
		yaw:         0.9,
		pitch:       0.35,
		dist:        7,
		yawTarget:   0.9,
		pitchTarget: 0.35,
		distTarget:  7,
		Camera: rl.NewCamera3D(
			rl.NewVector3(5, 4, 4),
			rl.NewVector3(0, 2, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
	a.drumTex = newPaperTexture(trace.DrumWidth, trace.DrumHeight)
	a.beltTex = newPaperTexture(trace.BeltWidth, trace.BeltHeight)
	a.decor = LoadDecor(logger, d.Config().Assets)
	return a
}

func newPaperTexture(w, h int) rl.Texture2D {
	img := rl.GenImageColor(w, h, ColPaper)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex
}

// Run opens the window and blocks until it is closed.
func Run(d *sim.Driver, logger *log.Logger) {
	initWindow()
	defer rl.CloseWindow()
	a := NewApp(d, logger)
	defer a.Unload()
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Unload() {
	rl.UnloadTexture(a.drumTex)
	rl.UnloadTexture(a.beltTex)
	for _, d := range a.decor {
		rl.UnloadModel(d.Model)
	}
}

func (a *App) Update() {
	a.handleKeys()
	a.updateCamera()

	dt := float64(rl.GetFrameTime())
	a.Driver.Advance(dt)

	a.drumPixels = a.Driver.Drum().Raster().Colors(a.drumPixels)
	rl.UpdateTexture(a.drumTex, a.drumPixels)
	a.beltPixels = a.Driver.Belt().Raster().Colors(a.beltPixels)
	rl.UpdateTexture(a.beltTex, a.beltPixels)
}

func (a *App) handleKeys() {
	d := a.Driver
	var err error
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		err = d.TogglePause()
	case rl.IsKeyPressed(rl.KeyR):
		d.Reset()
		a.lastErr = nil
	case rl.IsKeyPressed(rl.KeyG):
		err = d.ToggleGrid()
	case rl.IsKeyPressed(rl.KeyT):
		err = d.ToggleTrace()
	case rl.IsKeyPressed(rl.KeyM):
		err = d.ToggleMode()
	case rl.IsKeyPressed(rl.KeyUp):
		err = d.Nudge("amplitude", 1)
	case rl.IsKeyPressed(rl.KeyDown):
		err = d.Nudge("amplitude", -1)
	case rl.IsKeyPressed(rl.KeyRight):
		err = d.Nudge("drum_distance", 1)
	case rl.IsKeyPressed(rl.KeyLeft):
		err = d.Nudge("drum_distance", -1)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		err = d.Nudge("band_length", 1)
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		err = d.Nudge("band_length", -1)
	}
	if err != nil {
		a.Logger.Warn("control rejected", "err", err)
		a.lastErr = err
	}
}

func (a *App) updateCamera() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.yawTarget -= float64(delta.X) * 0.01
		a.pitchTarget = math.Max(-1.3, math.Min(1.3, a.pitchTarget+float64(delta.Y)*0.01))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.distTarget = math.Max(2, math.Min(25, a.distTarget-float64(wheel)*0.5))
	}

	lerp := 5.0 * float64(rl.GetFrameTime())
	if lerp > 1 {
		lerp = 1
	}
	a.yaw += (a.yawTarget - a.yaw) * lerp
	a.pitch += (a.pitchTarget - a.pitch) * lerp
	a.dist += (a.distTarget - a.dist) * lerp

	target := rl.NewVector3(0, float32(a.Driver.Track().CenterY), 0)
	a.Camera.Target = target
	a.Camera.Position = rl.NewVector3(
		target.X+float32(a.dist*math.Cos(a.pitch)*math.Sin(a.yaw)),
		target.Y+float32(a.dist*math.Sin(a.pitch)),
		target.Z+float32(a.dist*math.Cos(a.pitch)*math.Cos(a.yaw)),
	)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	rl.DrawGrid(20, 0.5)
	a.drawRollers()
	a.drawBand()
	a.drawTraceLine()
	a.drawDecor()
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	cfg := a.Driver.Config()
	rl.DrawText("seismograph", 30, 30, 24, ColText)
	rl.DrawText(fmt.Sprintf(":: %s", cfg.Sim.Mode), 200, 34, 16, ColTextDim)

	status, col := "RUNNING", ColText
	if cfg.Sim.Paused {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, windowW-130, 30, 16, col)

	lines := []string{
		fmt.Sprintf("t          %8.2f s", a.Driver.Time()),
		fmt.Sprintf("amplitude  %8.2f", cfg.Signal.Amplitude),
		fmt.Sprintf("distance   %8.2f", cfg.Conveyor.DrumDistance),
		fmt.Sprintf("band       %8d", cfg.Conveyor.BandLength),
		fmt.Sprintf("phase      %8.3f", a.Driver.Band().Phase()),
		fmt.Sprintf("trace      %8v", cfg.Sim.TraceRunning),
		fmt.Sprintf("grid       %8v", cfg.Drum.Grid),
	}
	for i, l := range lines {
		rl.DrawText(l, 30, int32(80+i*20), 16, ColText)
	}

	// flat view of the drum paper
	src := rl.NewRectangle(0, 0, float32(a.drumTex.Width), float32(a.drumTex.Height))
	dst := rl.NewRectangle(windowW-30-384, 70, 384, 96)
	rl.DrawTexturePro(a.drumTex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	rl.DrawRectangleLinesEx(dst, 1, ColTextDim)

	if a.lastErr != nil {
		rl.DrawText(a.lastErr.Error(), 30, windowH-70, 14, ColTrace)
	}
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [G] GRID  [T] TRACE  [M] MODE  [UP/DOWN] AMP  [LEFT/RIGHT] DIST  [ [ ] ] BAND",
		30, windowH-40, 14, ColTextDim)
	rl.DrawFPS(windowW-100, windowH-40)
}
