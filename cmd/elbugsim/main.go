package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tinycw/elbug/config"
	"github.com/tinycw/elbug/morse"
	"github.com/tinycw/elbug/sim"
)

// elbugsim replays a scripted paddle session through the keyer and
// prints what went out on the key line, both as raw timing spans and
// decoded back to text. It can also render the sidetone to a WAV file
// for listening tests.
func main() {
	var (
		scriptFile = flag.String("script", "", "scripted session to run")
		runFor     = flag.Int("ticks", 0, "override the scripted run length")
		wavFile    = flag.String("wav", "", "write the sidetone to this file")
	)
	flag.Parse()

	if *scriptFile == "" {
		log.Fatalf("elbugsim: -script is required")
	}

	script, err := sim.Load(*scriptFile)
	if err != nil {
		log.Fatalf("elbugsim: %v", err)
	}
	if *runFor > 0 {
		script.Run = *runFor
	}

	h, err := sim.NewHarness(script.Config(), script.UnitTicks())
	if err != nil {
		log.Fatalf("elbugsim: %v", err)
	}
	h.Play(script)
	h.Drain()

	unit := time.Duration(script.UnitTicks()) * config.TickPeriod
	fmt.Printf("unit %d ticks (%d wpm)\n", script.UnitTicks(), morse.WPM(unit))
	fmt.Printf("line: %s\n", h.Timeline())
	fmt.Printf("text: %s\n", h.Text())

	if *wavFile != "" {
		samples := sim.RenderSidetone(h.Spans(), config.TickPeriod)
		if err := sim.WriteWAV(*wavFile, samples); err != nil {
			log.Fatalf("elbugsim: %v", err)
		}
		log.Printf("elbugsim: wrote %s (%.1fs)", *wavFile, float64(len(samples))/sim.SampleRate)
	}
}
