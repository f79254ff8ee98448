package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/config"
	"github.com/plus3/hopper/sim"
)

var background = color.RGBA{R: 24, G: 26, B: 38, A: 255}

type Game struct {
	sim    *sim.Game
	camera *sim.FollowCamera
	best   float64
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	viewport := cfg.Viewport()
	camera := sim.NewFollowCamera(viewport, 0)
	game, err := sim.NewGame(sim.Options{
		Tuning:   cfg.Tuning,
		Input:    keyboard{acceleration: cfg.Tuning.Acceleration},
		Viewport: viewport,
		Camera:   camera,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Hopper")

	if err := ebiten.RunGame(&Game{sim: game, camera: camera}); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.sim.Step(1.0 / float64(ebiten.TPS()))
	g.best = max(g.best, g.sim.Height())

	if g.sim.Fallen() || ebiten.IsKeyPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	offset := g.camera.Position()

	for _, d := range sim.Renderables(g.sim.World, g.sim.Types) {
		switch s := d.Shape.(type) {
		case collision.Circle:
			vector.DrawFilledCircle(screen, float32(s.X-offset.X), float32(s.Y-offset.Y), float32(s.R), d.Color, true)
		case collision.Rect:
			vector.DrawFilledRect(screen, float32(s.X-offset.X), float32(s.Y-offset.Y), float32(s.W), float32(s.H), d.Color, false)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("height: %.0f\nbest:   %.0f\nTPS:    %.0f", max(g.sim.Height(), 0), g.best, ebiten.ActualTPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.sim.Viewport.Width()), int(g.sim.Viewport.Height())
}
