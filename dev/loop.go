package dev

import "time"

// Ticker is anything the keying loop advances once per period.
type Ticker interface {
	Tick()
}

// Loop paces the tickers at a fixed period, calling alive between
// rounds for a watchdog feed. It never returns.
func Loop(period time.Duration, alive func(), ts ...Ticker) {
	ticker := time.NewTicker(period)
	for range ticker.C {
		for _, t := range ts {
			t.Tick()
		}
		if alive != nil {
			alive()
		}
	}
}
