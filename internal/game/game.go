package game

import (
	"fmt"
	"log"
	"time"

	"raycastdemo/internal/camera"
	"raycastdemo/internal/components"
	"raycastdemo/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Config struct {
	ScenePath string
	SavePath  string
	Width     int32
	Height    int32
}

type Game struct {
	Config   Config
	World    *world.World
	Renderer *world.Renderer
	Camera   *camera.OrbitCamera
	Demo     *components.RaycastDemo
	Controls *Controls

	panel     *panel
	DebugMode bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg Config) *Game {
	return &Game{
		Config:   cfg,
		World:    world.New(),
		Renderer: world.NewRenderer(),
		Controls: &Controls{},
	}
}

// Load reads the scene and binds the controls to its RaycastDemo. It needs
// no window, so it runs before Run opens one.
func (g *Game) Load() error {
	if err := g.World.LoadScene(g.Config.ScenePath); err != nil {
		return err
	}

	g.Demo = g.World.FindRaycastDemo()
	if g.Demo == nil {
		return fmt.Errorf("scene %s has no RaycastDemo", g.Config.ScenePath)
	}
	g.Controls.Bind(g.Demo)
	g.panel = newPanel(g.Demo)

	target := g.Demo.GetGameObject().Transform.Position
	g.Camera = camera.New(target)

	g.World.Scene.Start()
	log.Printf("Game: loaded %s (%d objects, %d casts)", g.Config.ScenePath, len(g.World.Scene.GameObjects), len(g.Demo.CastDirections))
	return nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(g.Config.Width, g.Config.Height, "Raycast Demo")
	defer rl.CloseWindow()

	defer g.Close()

	rl.SetTargetFPS(120)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	if g.Config.SavePath != "" {
		if err := g.World.SaveScene(g.Config.SavePath); err != nil {
			log.Printf("Game: save failed: %v", err)
		} else {
			log.Printf("Game: saved scene to %s", g.Config.SavePath)
		}
	}
}

// Close detaches the panel controls from the demo.
func (g *Game) Close() {
	g.Controls.Unbind()
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if !g.panel.Hovered() {
		g.Camera.Update()
	}

	// Keyboard shortcuts for the panel buttons
	if !g.panel.Editing() {
		if rl.IsKeyPressed(rl.KeyR) {
			g.Controls.Randomize.Invoke()
		}
		if rl.IsKeyPressed(rl.KeyC) {
			g.Controls.RaycastCommands.Invoke()
		}
		if rl.IsKeyPressed(rl.KeyO) {
			g.Controls.RaycastOld.Invoke()
		}
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	g.Renderer.Draw(g.World)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.panel.Draw(g.Controls)
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	screenH := int32(rl.GetScreenHeight())
	rl.DrawText("Right mouse to orbit, wheel to zoom, R/C/O for the buttons", 10, screenH-30, 18, rl.Gray)

	hits, casts := g.Controls.LastCast()
	rl.DrawText(fmt.Sprintf("Last cast: %d/%d hits", hits, casts), 10, screenH-55, 18, rl.LightGray)

	if g.DebugMode {
		rl.DrawFPS(10, 10)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 35, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 55, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Lines:  %d debug, %d coroutines", g.World.Debug.Len(), g.World.Scene.CoroutineCount()), 10, 75, 16, rl.Green)
	}
}
