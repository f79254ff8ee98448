package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/hopper/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:   time.Second,
		Tick:       time.Second / 60,
		Seed:       7,
		TotalTicks: 60,
		TickTime:   Stats{Samples: []time.Duration{time.Microsecond}},
		Spawned:    12,
		Despawned:  4,
		Scheduler: &ecs.SchedulerStats{
			SystemCount: 1,
			Systems:     []ecs.SystemStats{{Name: "integration", ExecutionCount: 60}},
		},
	}
	report.TickTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Total Ticks:** 60")
	assert.Contains(t, out, "(unthrottled)")
	assert.Contains(t, out, "| integration | 60 |")
	assert.Contains(t, out, "12 / 4")
	assert.NotContains(t, out, "GC Pause")
}

func TestZigzag(t *testing.T) {
	z := &zigzag{acceleration: 100, period: 2}

	var xs []float64
	for range 6 {
		move := z.MovementInput()
		assert.Equal(t, -1.0, move.Y)
		xs = append(xs, move.X)
	}
	assert.Equal(t, []float64{100, 100, -100, -100, 100, 100}, xs)
}
