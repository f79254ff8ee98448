package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/hopper/ecs"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Tick       time.Duration
	Realtime   bool
	Seed       uint64
	AutoBounce bool

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Height         float64
	BestHeight     float64
	Falls          int
	Entities       int
	Spawned        int
	Despawned      int
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Simulation Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Tick:** {{.Tick}}{{if .Realtime}} (wall-clock ticker){{else}} (unthrottled){{end}}
- **Seed:** {{.Seed}}
- **Auto Bounce:** {{.AutoBounce}}

## Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
{{- if .TickTime.Samples}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
- **Best Height:** {{printf "%.0f" .BestHeight}}
- **Falls:** {{.Falls}}
{{- end}}
- **Final Height:** {{printf "%.0f" .Height}}
- **Live Entities:** {{.Entities}}
- **Platforms Spawned / Despawned:** {{.Spawned}} / {{.Despawned}}

## Systems
| System | Executions | Avg | Min | Max | Total |
|---|---|---|---|---|---|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} | {{.TotalDuration}} |
{{- end}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
