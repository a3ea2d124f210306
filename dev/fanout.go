package dev

import "github.com/tinycw/elbug/keyer"

// Fanout drives several key outputs as one, so the transmitter line,
// the sidetone and the status LED all follow the same edge.
type Fanout []keyer.KeyOutput

func (f Fanout) Down() {
	for _, o := range f {
		o.Down()
	}
}

func (f Fanout) Up() {
	for _, o := range f {
		o.Up()
	}
}
