package sim

import (
	"fmt"
	"image/color"
	"log"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
)

var (
	playerColor = color.RGBA{R: 240, G: 180, B: 60, A: 255}
	groundColor = color.RGBA{R: 120, G: 120, B: 140, A: 255}
)

// Options configures NewGame. Zero-valued collaborators get defaults: a
// 480x800 viewport, a FollowCamera and no input.
type Options struct {
	Tuning   Tuning
	Input    InputController
	Viewport Viewport
	Camera   Camera
	Logger   *log.Logger
}

// Game owns a world, its pipeline and the collaborators the pipeline talks to.
type Game struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Types     Types
	Tuning    Tuning

	Viewport Viewport
	Camera   Camera
	Spawner  *PlatformSpawner
	Player   ecs.Entity

	collisions *EntityCollisionSystem
	ground     *GroundDetectionSystem
	spawn      *PlatformSpawnSystem
}

// NewGame registers the components, builds the pipeline and spawns the player
// standing on a full-width ground platform.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if opts.Viewport == nil {
		opts.Viewport = FixedViewport{W: 480, H: 800}
	}
	if opts.Camera == nil {
		opts.Camera = NewFollowCamera(opts.Viewport, 0)
	}

	registry := ecs.NewComponentRegistry()
	types := RegisterComponents(registry)

	g := &Game{
		World:    ecs.NewWorld(registry),
		Types:    types,
		Tuning:   opts.Tuning,
		Viewport: opts.Viewport,
		Camera:   opts.Camera,
		Spawner:  NewPlatformSpawner(opts.Tuning),
	}

	g.collisions = NewEntityCollisionSystem(types, opts.Tuning)
	g.ground = NewGroundDetectionSystem(types, opts.Tuning)
	g.spawn = NewPlatformSpawnSystem(types, opts.Tuning, g.Spawner, opts.Viewport, opts.Camera)

	g.Scheduler = ecs.NewScheduler()
	if opts.Logger != nil {
		g.Scheduler.SetLogger(opts.Logger)
	}
	for _, system := range []ecs.System{
		NewInputSystem(types, opts.Input),
		NewPlayerPhysicsSystem(types, opts.Tuning.AutoBounce),
		NewIntegrationSystem(types),
		NewBoundarySystem(types, opts.Viewport),
		g.collisions,
		g.ground,
		NewVelocityCapSystem(types),
		NewCameraFollowSystem(types, opts.Camera),
		g.spawn,
	} {
		g.Scheduler.AddSystem(system)
	}

	g.populate()
	return g, nil
}

// groundY is the top edge of the starting platform.
func (g *Game) groundY() float64 {
	return g.Viewport.Height() - g.Tuning.PlatformHeight
}

func (g *Game) populate() {
	width := g.Viewport.Width()
	groundY := g.groundY()

	mustSpawn(g.World,
		Transform{X: 0, Y: groundY},
		RectCollider{Width: width, Height: g.Tuning.PlatformHeight, Sides: SideAll},
		Platform{},
		Renderable{Color: groundColor},
	)

	g.Player = mustSpawn(g.World,
		Transform{X: width / 2, Y: groundY - g.Tuning.PlayerRadius},
		Velocity{},
		CircleCollider{Radius: g.Tuning.PlayerRadius, Restitution: g.Tuning.Restitution},
		PlayerPhysics{Gravity: g.Tuning.Gravity, JumpVelocity: g.Tuning.JumpVelocity, Grounded: true},
		MaxSpeed{X: g.Tuning.MaxSpeed},
		InputControlled{},
		CameraTarget{},
		Renderable{Color: playerColor, Layer: 1},
	)

	g.Spawner.Reset(width/2, groundY)
}

// Reset clears the world and starts over from the ground platform. A camera
// with a Reset(y) method is moved back to the top of the starting view.
func (g *Game) Reset() {
	if c, ok := g.Camera.(interface{ Reset(y float64) }); ok {
		c.Reset(0)
	}
	g.World.Clear()
	g.spawn.Spawned = 0
	g.spawn.Despawned = 0
	g.populate()
}

// Step advances the simulation by one tick.
func (g *Game) Step(dt float64) {
	g.Scheduler.Update(dt, g.World)
}

// Ticks is the number of pipeline ticks run so far.
func (g *Game) Ticks() int64 {
	stats := g.Scheduler.GetStats()
	if len(stats.Systems) == 0 {
		return 0
	}
	return stats.Systems[0].ExecutionCount
}

// PlayerPosition returns the player's center.
func (g *Game) PlayerPosition() collision.Vec2 {
	t := ecs.Get[Transform](g.World, g.Player)
	if t == nil {
		return collision.Vec2{}
	}
	return collision.Vec2{X: t.X, Y: t.Y}
}

// Height is how far the player's center sits above its starting position.
func (g *Game) Height() float64 {
	return g.groundY() - g.Tuning.PlayerRadius - g.PlayerPosition().Y
}

// Fallen reports whether the player dropped below the bottom of the view.
func (g *Game) Fallen() bool {
	bottom := g.Camera.Position().Y + g.Viewport.Height()
	return g.PlayerPosition().Y-g.Tuning.PlayerRadius > bottom
}

// Close tears the pipeline down.
func (g *Game) Close() {
	g.Scheduler.Destroy()
}
