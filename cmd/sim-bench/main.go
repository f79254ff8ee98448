package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/config"
	"github.com/plus3/hopper/sim"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)

	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last.")
	tick := flag.Duration("tick", time.Second/60, "Fixed simulation step.")
	realtime := flag.Bool("realtime", false, "Tick on a wall-clock ticker instead of as fast as possible.")
	switchEvery := flag.Int("switch-every", 90, "Ticks between scripted direction changes.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	snapshotPath := flag.String("snapshot", "", "Write the final debug snapshot (msgpack) to this file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q, want cpu or mem", *profileMode)
	}

	input := &zigzag{acceleration: cfg.Tuning.Acceleration, period: *switchEvery}
	game, err := sim.NewGame(sim.Options{
		Tuning:   cfg.Tuning,
		Input:    input,
		Viewport: cfg.Viewport(),
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.Close()

	report := &Report{
		Duration:       *duration,
		Tick:           *tick,
		Realtime:       *realtime,
		Seed:           cfg.Tuning.Seed,
		AutoBounce:     cfg.Tuning.AutoBounce,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	if *realtime {
		game.Scheduler.Run(ctx, game.World, *tick)
	} else {
		report.TickTime.Samples = runUnthrottled(ctx, game, tick.Seconds(), report)
	}
	report.TotalTime = time.Since(start)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	snap := game.Snapshot()
	report.TotalTicks = game.Ticks()
	report.Height = snap.Height
	report.Entities = game.World.EntityCount()
	report.Spawned = snap.Spawned
	report.Despawned = snap.Despawned
	report.Scheduler = game.Scheduler.GetStats()

	log.Println("Simulation finished.")

	if *snapshotPath != "" {
		if err := writeSnapshot(*snapshotPath, snap); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Snapshot written to %s\n", *snapshotPath)
	}

	fmt.Println()
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

// runUnthrottled steps as fast as possible, resetting the game whenever the
// player falls out of view.
func runUnthrottled(ctx context.Context, game *sim.Game, dt float64, report *Report) []time.Duration {
	samples := make([]time.Duration, 0, 1<<16)
	for {
		select {
		case <-ctx.Done():
			return samples
		default:
		}

		tickStart := time.Now()
		game.Step(dt)
		samples = append(samples, time.Since(tickStart))

		report.BestHeight = max(report.BestHeight, game.Height())
		if game.Fallen() {
			report.Falls++
			game.Reset()
		}
	}
}

func writeSnapshot(path string, snap sim.DebugSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sim.WriteSnapshot(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// zigzag steers the player left and right, switching every period ticks, and
// jumps whenever allowed.
type zigzag struct {
	acceleration float64
	period       int
	calls        int
}

func (z *zigzag) MovementInput() collision.Vec2 {
	dir := 1.0
	if z.period > 0 && (z.calls/z.period)%2 == 1 {
		dir = -1
	}
	z.calls++
	return collision.Vec2{X: dir * z.acceleration, Y: -1}
}
