// Command blockfall-soak plays many ticks of random input against the engine
// and reports timing, memory and gameplay totals.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
)

func main() {
	ticks := flag.Int("ticks", 1_000_000, "number of engine ticks to run")
	seed := flag.Uint64("seed", 1, "random seed for pieces and input")
	reportPath := flag.String("report", "", "write the report to this file instead of stdout")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "include GC pause totals in the report")
	flag.Parse()

	log.Printf("Starting soak run: %d ticks, seed %d", *ticks, *seed)

	report := run(*ticks, *seed)
	report.GCPauseMetrics = *gcPauseMetrics

	out := os.Stdout
	if *reportPath != "" {
		f, err := os.Create(*reportPath)
		if err != nil {
			log.Fatalf("Failed to create report: %v", err)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintln(out, "--- Soak Report ---")
	if err := report.Generate(out); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Fprintln(out, "--- End of Report ---")

	log.Println("Soak run complete.")
}

// run drives a fresh engine for ticks frames with a scripted random player.
func run(ticks int, seed uint64) *Report {
	engine := game.New(game.DefaultConfig(), rand.New(rand.NewPCG(seed, seed)))
	player := newPlayer(rand.New(rand.NewPCG(seed, ^seed)))

	report := &Report{
		Ticks:  ticks,
		Seed:   seed,
		Events: make(map[string]int),
		TickTime: Stats{
			Samples: make([]time.Duration, 0, ticks),
		},
	}
	engine.SubscribeAll(report.Observe)

	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

	for range ticks {
		engine.Apply(player.Next(engine.Session())...)

		tickStart := time.Now()
		engine.Tick()
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

		if score := engine.Score().Best; score > report.BestScore {
			report.BestScore = score
		}
	}

	report.TotalTime = time.Since(start)
	report.TickTime.Finalize()
	report.Systems = engine.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}
