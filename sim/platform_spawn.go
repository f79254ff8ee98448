package sim

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
)

var platformColor = color.RGBA{R: 90, G: 200, B: 120, A: 255}

// PlatformSpawner generates the platform layout above the player. Each new
// platform sits higher than the last and within horizontal reach of it.
// Generation is fully determined by the tuning's Seed.
type PlatformSpawner struct {
	tuning Tuning
	rng    *rand.Rand

	startY     float64
	lastSpawnY float64
	lastX      float64
}

// NewPlatformSpawner creates a spawner. Call Reset before the first spawn.
func NewPlatformSpawner(tuning Tuning) *PlatformSpawner {
	return &PlatformSpawner{
		tuning: tuning,
		rng:    rand.New(rand.NewPCG(tuning.Seed, tuning.Seed^0x9e3779b97f4a7c15)),
	}
}

// Reset restarts generation from a platform whose top edge is at y and whose
// center is at x, and reseeds the generator.
func (p *PlatformSpawner) Reset(x, y float64) {
	p.rng = rand.New(rand.NewPCG(p.tuning.Seed, p.tuning.Seed^0x9e3779b97f4a7c15))
	p.startY = y
	p.lastSpawnY = y
	p.lastX = x
}

// LastSpawnY is the top edge of the highest platform generated so far.
func (p *PlatformSpawner) LastSpawnY() float64 {
	return p.lastSpawnY
}

// Difficulty grows linearly from 1 to MaxDifficulty over DifficultyHeight of
// climbing above the starting platform.
func (p *PlatformSpawner) Difficulty(trackedY float64) float64 {
	climbed := math.Max(0, p.startY-trackedY)
	progress := math.Min(climbed/p.tuning.DifficultyHeight, 1)
	return 1 + progress*(p.tuning.MaxDifficulty-1)
}

// ShouldSpawn reports whether the tracked height has come within
// SpawnDistance of the highest platform.
func (p *PlatformSpawner) ShouldSpawn(trackedY float64) bool {
	return trackedY <= p.lastSpawnY+p.tuning.SpawnDistance
}

// BatchSize picks how many platforms the next batch holds.
func (p *PlatformSpawner) BatchSize() int {
	return p.tuning.MinBatch + p.rng.IntN(p.tuning.MaxBatch-p.tuning.MinBatch+1)
}

// Next generates the next platform above the last one and advances the
// spawner.
func (p *PlatformSpawner) Next(difficulty, viewportWidth float64) collision.Rect {
	t := p.tuning

	width := math.Max(t.PlatformWidth/difficulty, t.MinPlatformWidth)
	width *= 1 + p.jitter(t.WidthJitter)
	width = math.Min(width, viewportWidth)

	spacing := t.PlatformSpacing * (1 + (difficulty-1)/2)
	spacing *= 1 + p.jitter(t.SpacingJitter)

	half := width / 2
	lo := math.Max(p.lastX-t.MaxHorizontalReach, half)
	hi := math.Min(p.lastX+t.MaxHorizontalReach, viewportWidth-half)

	var x float64
	if lo <= hi {
		x = lo + p.rng.Float64()*(hi-lo)
	} else {
		x = math.Min(math.Max(p.lastX, half), viewportWidth-half)
	}

	y := p.lastSpawnY - spacing
	p.lastSpawnY = y
	p.lastX = x

	return collision.Rect{X: x - half, Y: y, W: width, H: t.PlatformHeight}
}

// jitter returns a uniform value in [-f, f].
func (p *PlatformSpawner) jitter(f float64) float64 {
	return (p.rng.Float64()*2 - 1) * f
}

// SpawnPlatform adds a platform entity covering rect that blocks on sides.
func SpawnPlatform(w *ecs.World, rect collision.Rect, sides SideMask) ecs.Entity {
	return mustSpawn(w, platformComponents(rect, sides)...)
}

func platformComponents(rect collision.Rect, sides SideMask) []any {
	return []any{
		Transform{X: rect.X, Y: rect.Y},
		RectCollider{Width: rect.W, Height: rect.H, Sides: sides},
		Platform{},
		Renderable{Color: platformColor},
	}
}

// PlatformSpawnSystem keeps platforms generated ahead of the tracked entity
// and destroys those that fell far enough below the camera.
type PlatformSpawnSystem struct {
	Spawner  *PlatformSpawner
	Viewport Viewport
	Camera   Camera

	// DespawnDistance is measured from the camera's top edge.
	DespawnDistance float64

	Spawned   int
	Despawned int

	tracked   ecs.Query
	platforms ecs.Query
	commands  ecs.Commands
}

func NewPlatformSpawnSystem(types Types, tuning Tuning, spawner *PlatformSpawner, viewport Viewport, camera Camera) *PlatformSpawnSystem {
	return &PlatformSpawnSystem{
		Spawner:         spawner,
		Viewport:        viewport,
		Camera:          camera,
		DespawnDistance: tuning.DespawnDistance,
		tracked:         ecs.MustQuery(types.Transform, types.CameraTarget),
		platforms:       ecs.MustQuery(types.Transform, types.Platform),
	}
}

func (s *PlatformSpawnSystem) Name() string { return "platform-spawn" }

func (s *PlatformSpawnSystem) Update(dt float64, w *ecs.World) {
	targets := query(w, s.tracked)
	if len(targets) == 0 {
		return
	}
	trackedY := ecs.Get[Transform](w, targets[0]).Y

	if s.Spawner.ShouldSpawn(trackedY) {
		difficulty := s.Spawner.Difficulty(trackedY)
		for range s.Spawner.BatchSize() {
			s.commands.Spawn(platformComponents(s.Spawner.Next(difficulty, s.Viewport.Width()), SideTop)...)
			s.Spawned++
		}
	}

	cameraY := trackedY
	if s.Camera != nil {
		cameraY = s.Camera.Position().Y
	}
	threshold := cameraY + s.DespawnDistance

	for _, e := range query(w, s.platforms) {
		if ecs.Get[Transform](w, e).Y > threshold {
			s.commands.Destroy(e)
			s.Despawned++
		}
	}

	if err := s.commands.Flush(w); err != nil {
		panic(err)
	}
}
