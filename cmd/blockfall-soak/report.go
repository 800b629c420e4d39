package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/engine"
)

// Report collects everything a soak run measured.
type Report struct {
	// Configuration
	Duration time.Duration
	Step     time.Duration
	Seed     uint64

	// Results
	TotalTicks int64
	TotalTime  time.Duration
	SimTime    time.Duration
	TickTime   Stats
	Games      int
	HardDrops  int
	LevelUps   int
	BestScore  int
	BestLevel  int
	Lines      int

	clears *intmap.Map[int, int]

	Scheduler     *engine.SchedulerStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func NewReport(duration, step time.Duration, seed uint64) *Report {
	return &Report{
		Duration: duration,
		Step:     step,
		Seed:     seed,
		TickTime: Stats{Samples: make([]time.Duration, 0, 1024)},
		clears:   intmap.New[int, int](4),
	}
}

// Notify tallies gameplay events. It is registered as the engine's audio
// listener so every event reaches it regardless of haptics.
func (r *Report) Notify(ev engine.Event) {
	switch ev.Kind {
	case engine.EventHardDrop:
		r.HardDrops++
	case engine.EventLevelUp:
		r.LevelUps++
	case engine.EventGameOver:
		r.Games++
	case engine.EventLineClear:
		n, _ := r.clears.Get(ev.Rows)
		r.clears.Put(ev.Rows, n+1)
		r.Lines += ev.Rows
	}
}

// Observe records the final stats of a game.
func (r *Report) Observe(stats engine.Stats) {
	r.BestScore = max(r.BestScore, stats.Score)
	r.BestLevel = max(r.BestLevel, stats.Level)
}

// ClearBin is one bar of the line clear histogram.
type ClearBin struct {
	Rows  int
	Count int
}

// Clears returns the line clear histogram for one to four rows.
func (r *Report) Clears() []ClearBin {
	bins := make([]ClearBin, 0, 4)
	for rows := 1; rows <= 4; rows++ {
		n, _ := r.clears.Get(rows)
		bins = append(bins, ClearBin{Rows: rows, Count: n})
	}
	return bins
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
# Blockfall Soak Report

## Run Configuration
- **Wall Duration:** {{.Duration}}
- **Simulated Step:** {{.Step}}
- **Seed:** {{.Seed}}

## Gameplay
- **Games Finished:** {{.Games}}
- **Hard Drops:** {{.HardDrops}}
- **Lines Cleared:** {{.Lines}}
- **Level Ups:** {{.LevelUps}}
- **Best Score:** {{.BestScore}} (level {{.BestLevel}})
- **Line Clears:**
{{- range .Clears}}
  - {{.Rows}} row{{if ne .Rows 1}}s{{end}}: {{.Count}}
{{- end}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
{{with .Scheduler}}
## Stages
| Stage | Runs | Avg | Min | Max |
|-------|------|-----|-----|-----|
{{- range .Stages}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
