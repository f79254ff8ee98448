package sim

import (
	"fmt"
	"io"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
	"github.com/vmihailenco/msgpack/v5"
)

// DebugSnapshot is a read-only dump of one tick, for overlays and offline
// inspection.
type DebugSnapshot struct {
	Tick      int64            `msgpack:"tick"`
	Height    float64          `msgpack:"height"`
	CameraY   float64          `msgpack:"camera_y"`
	Contacts  int              `msgpack:"contacts"`
	Spawned   int              `msgpack:"spawned"`
	Despawned int              `msgpack:"despawned"`
	Entities  []EntitySnapshot `msgpack:"entities"`
	Probes    []ProbeSnapshot  `msgpack:"probes"`
}

type EntitySnapshot struct {
	Entity   uint32  `msgpack:"entity"`
	Kind     string  `msgpack:"kind"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Width    float64 `msgpack:"w,omitempty"`
	Height   float64 `msgpack:"h,omitempty"`
	Radius   float64 `msgpack:"r,omitempty"`
	VX       float64 `msgpack:"vx,omitempty"`
	VY       float64 `msgpack:"vy,omitempty"`
	Grounded bool    `msgpack:"grounded,omitempty"`
}

type ProbeSnapshot struct {
	Entity   uint32  `msgpack:"entity"`
	OriginX  float64 `msgpack:"ox"`
	OriginY  float64 `msgpack:"oy"`
	Length   float64 `msgpack:"length"`
	Hit      bool    `msgpack:"hit"`
	Distance float64 `msgpack:"distance,omitempty"`
	NormalX  float64 `msgpack:"nx,omitempty"`
	NormalY  float64 `msgpack:"ny,omitempty"`
	Platform uint32  `msgpack:"platform,omitempty"`
}

// Snapshot captures the drawable entities and the last tick's ground probes.
func (g *Game) Snapshot() DebugSnapshot {
	snap := DebugSnapshot{
		Tick:      g.Ticks(),
		Height:    g.Height(),
		CameraY:   g.Camera.Position().Y,
		Contacts:  g.collisions.Contacts,
		Spawned:   g.spawn.Spawned,
		Despawned: g.spawn.Despawned,
	}

	for _, d := range Renderables(g.World, g.Types) {
		es := EntitySnapshot{Entity: uint32(d.Entity)}
		switch s := d.Shape.(type) {
		case collision.Circle:
			es.Kind, es.X, es.Y, es.Radius = "circle", s.X, s.Y, s.R
		case collision.Rect:
			es.Kind, es.X, es.Y, es.Width, es.Height = "rect", s.X, s.Y, s.W, s.H
		}
		if v := ecs.Get[Velocity](g.World, d.Entity); v != nil {
			es.VX, es.VY = v.X, v.Y
		}
		if p := ecs.Get[PlayerPhysics](g.World, d.Entity); p != nil {
			es.Grounded = p.Grounded
		}
		snap.Entities = append(snap.Entities, es)
	}

	for _, p := range g.ground.Probes {
		ps := ProbeSnapshot{
			Entity:  uint32(p.Entity),
			OriginX: p.Ray.Origin.X,
			OriginY: p.Ray.Origin.Y,
			Length:  p.Length,
			Hit:     p.Hit.Hit,
		}
		if p.Hit.Hit {
			ps.Distance = p.Hit.Distance
			ps.NormalX, ps.NormalY = p.Hit.Normal.X, p.Hit.Normal.Y
			ps.Platform = p.Hit.Ref
		}
		snap.Probes = append(snap.Probes, ps)
	}
	return snap
}

// WriteSnapshot encodes s as msgpack.
func WriteSnapshot(w io.Writer, s DebugSnapshot) error {
	if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (DebugSnapshot, error) {
	var s DebugSnapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return DebugSnapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
