package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall time the soak should run for.")
	step := flag.Duration("step", 16*time.Millisecond, "Simulated time passed to each tick.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece sequence and the bot.")
	flag.Parse()

	log.Println("Starting blockfall soak test...")

	report := NewReport(*duration, *step, *seed)
	player := newBot(*seed)
	e := engine.New(
		engine.WithSeed(*seed),
		engine.WithInput(player),
		engine.WithAudio(report),
	)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	run(ctx, e, player, report)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run ticks the engine with a fixed simulated step until ctx is done.
func run(ctx context.Context, e *engine.Engine, player *bot, report *Report) {
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			mode := e.Mode()
			if mode == engine.ModeGameOver {
				report.Observe(e.Stats())
			}
			player.press(mode)

			tickStart := time.Now()
			e.Tick(report.Step)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

			report.TotalTicks++
			report.SimTime += report.Step
		}
	}

	report.Observe(e.Stats())
	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Scheduler = e.SchedulerStats()
}
