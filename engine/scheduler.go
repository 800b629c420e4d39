package engine

import (
	"context"
	"reflect"
	"time"
)

// Stage is one step of the per-tick pipeline.
type Stage interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame carries the data shared by every stage during one tick.
type UpdateFrame struct {
	Delta   time.Duration
	Pressed CommandSet
	Events  *Events
}

func newUpdateFrame(dt time.Duration, events *Events) *UpdateFrame {
	return &UpdateFrame{
		Delta:  dt,
		Events: events,
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	StageCount      int
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// stageEntry is a registered stage with its running timings.
type stageEntry struct {
	stage Stage
	name  string
	runs  int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (en *stageEntry) record(d time.Duration) {
	if en.runs == 0 || d < en.min {
		en.min = d
	}
	en.max = max(en.max, d)
	en.runs++
	en.total += d
	en.last = d
}

// Scheduler runs stages in registration order once per tick, then delivers
// the notifications they queued.
type Scheduler struct {
	entries []*stageEntry
	events  *Events
	deliver func(Event)
}

// NewScheduler creates a scheduler that hands flushed events to deliver.
func NewScheduler(deliver func(Event)) *Scheduler {
	if deliver == nil {
		deliver = func(Event) {}
	}
	return &Scheduler{
		events:  newEvents(),
		deliver: deliver,
	}
}

// Register appends a stage to the pipeline. Its stats are reported under
// the stage's type name.
func (s *Scheduler) Register(stage Stage) {
	t := reflect.TypeOf(stage)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.entries = append(s.entries, &stageEntry{stage: stage, name: t.Name()})
}

// Once executes every stage with the given elapsed time and flushes events.
func (s *Scheduler) Once(dt time.Duration) {
	frame := newUpdateFrame(dt, s.events)

	for _, en := range s.entries {
		start := time.Now()
		en.stage.Execute(frame)
		en.record(time.Since(start))
	}

	frame.Events.Flush(s.deliver)
}

// Run executes ticks at the given interval until the context is cancelled.
// The elapsed time passed to each tick is measured, not assumed.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns a snapshot of the per-stage timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		StageCount: len(s.entries),
		Stages:     make([]StageStats, 0, len(s.entries)),
	}

	for _, en := range s.entries {
		var avg time.Duration
		if en.runs > 0 {
			avg = en.total / time.Duration(en.runs)
		}
		stats.Stages = append(stats.Stages, StageStats{
			Name:           en.name,
			ExecutionCount: en.runs,
			MinDuration:    en.min,
			MaxDuration:    en.max,
			AvgDuration:    avg,
			LastDuration:   en.last,
			TotalDuration:  en.total,
		})
		stats.TotalExecutions += en.runs
	}

	return stats
}
