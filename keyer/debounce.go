package keyer

// debouncer filters one paddle line. Presses pass through immediately;
// a release must hold for threshold consecutive ticks before it is
// believed. Contact bounce on release is the failure mode that corrupts
// the memory logic, so only that edge is filtered.
type debouncer struct {
	threshold int
	steady    bool // last accepted value
	bounces   int
}

// filter folds one raw read into the accepted paddle state.
func (d *debouncer) filter(latest bool) bool {
	switch {
	case latest == d.steady:
		d.bounces = 0
	case latest:
		// release to press edges are trusted at once
		d.steady = true
		d.bounces = 0
	default:
		d.bounces++
		if d.bounces >= d.threshold {
			d.steady = false
			d.bounces = 0
		}
	}
	return d.steady
}
