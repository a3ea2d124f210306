//go:build tinygo

package main

import (
	"sync/atomic"
	"time"

	"github.com/tinycw/elbug/config"
	"github.com/tinycw/elbug/dev"
	"github.com/tinycw/elbug/keyer"
	"github.com/tinycw/elbug/morse"
)

// What the keying loop shares with the panel: the current unit and
// whatever the decoder has read back off the key line.
var (
	decoded = make(chan rune, 16)
	unitNow atomic.Int32
)

// feedDecoded hands a decoded character to the panel goroutine. The
// keying loop must never wait on the panel, so a full channel drops.
func feedDecoded(r rune) {
	select {
	case decoded <- r:
	default:
	}
}

// runStation redraws the panel a few times a second with the speed,
// the mode flags and the tail of the decoded transmission.
func runStation(panel *dev.Panel, cfg keyer.Config) {
	text := make([]byte, 0, 84)

	ticker := time.NewTicker(time.Millisecond * 100)
	for range ticker.C {
	drain:
		for {
			select {
			case r := <-decoded:
				text = append(text, byte(r))
				if len(text) > 84 {
					text = text[len(text)-84:]
				}
			default:
				break drain
			}
		}

		unit := time.Duration(unitNow.Load()) * config.TickPeriod
		panel.Draw(dev.Status{
			WPM:       morse.WPM(unit),
			Iambic:    cfg.Iambic,
			Autospace: cfg.Autospace,
			Text:      string(text),
		})
	}
}
