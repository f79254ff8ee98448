package ecs

import (
	"context"
	"log"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order, once per fixed tick.
// There is no priority or dependency resolution: the order systems are added
// in is the order they run in.
type Scheduler struct {
	systems     []System
	systemTypes map[reflect.Type]struct{}
	systemStats []*systemStatsInternal
	logger      *log.Logger
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems:     make([]System, 0),
		systemTypes: make(map[reflect.Type]struct{}),
		logger:      log.Default(),
	}
}

// SetLogger replaces the logger used for registration warnings.
func (s *Scheduler) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// AddSystem appends a system to the pipeline. A second system of the same
// concrete type is rejected with a warning and AddSystem returns false.
func (s *Scheduler) AddSystem(system System) bool {
	systemType := reflect.TypeOf(system)
	if _, exists := s.systemTypes[systemType]; exists {
		s.logger.Printf("ecs: system %s (%v) already registered, ignoring", system.Name(), systemType)
		return false
	}

	s.systemTypes[systemType] = struct{}{}
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        system.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	return true
}

// Systems returns the registered systems in execution order.
func (s *Scheduler) Systems() []System {
	systems := make([]System, len(s.systems))
	copy(systems, s.systems)
	return systems
}

// Update runs every system once, synchronously, in registration order.
func (s *Scheduler) Update(dt float64, w *World) {
	for i, system := range s.systems {
		start := time.Now()
		system.Update(dt, w)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run ticks the pipeline every interval with a fixed dt equal to the interval
// until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, w *World, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dt := interval.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Update(dt, w)
		}
	}
}

// Destroy calls OnDestroy on every system that implements Destroyer and
// empties the scheduler.
func (s *Scheduler) Destroy() {
	for _, system := range s.systems {
		if d, ok := system.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	s.systems = s.systems[:0]
	s.systemStats = nil
	clear(s.systemTypes)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
