// Package keyer implements the decision engine of a dual-paddle Morse
// keyer: debounced paddle reads, last-pressed tracking, per-element
// send-state machines with a one-slot memory, and the autospacing gate
// that times element dispatch.
//
// A Keyer owns all of its state and advances only through Tick, which
// the caller runs on a fixed period. Hardware access is injected
// through the PaddleInput, KeyOutput and SpeedSource collaborators, so
// the engine runs identically on silicon and in tests.
package keyer

// PaddleInput reports the instantaneous paddle line states, true while
// the lever is held. Electrical polarity is the implementation's
// concern; the engine only sees booleans.
type PaddleInput interface {
	Dot() bool
	Dash() bool
}

// KeyOutput drives the transmitter key line.
type KeyOutput interface {
	Down()
	Up()
}

// SpeedSource yields the current unit duration in ticks.
type SpeedSource interface {
	UnitTicks() int
}

// Error is a construction error. The engine itself has no runtime
// error paths; once built it runs forever.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoPaddles = Error("nil paddle input")
	ErrNoKey     = Error("nil key output")
	ErrNoSpeed   = Error("nil speed source")
	ErrDebounce  = Error("negative debounce")
)

// Config selects the arbitration policy and filter depth. The zero
// value is a last-pressed keyer with no autospacing and an unfiltered
// release edge.
type Config struct {
	// Iambic selects alternating dual-paddle arbitration. When false
	// the most recently pressed, still-held paddle wins.
	Iambic bool
	// Autospace defers queued elements so inter-letter and inter-word
	// silences come out as whole 3- and 7-unit gaps.
	Autospace bool
	// Debounce is the number of consecutive released reads required
	// before a paddle release is believed.
	Debounce int
}

// DefaultConfig returns the customary setup: iambic arbitration, no
// autospacing, two ticks of release filtering.
func DefaultConfig() Config {
	return Config{Iambic: true, Debounce: 2}
}

// Keyer is the engine aggregate. It is not safe for concurrent use;
// drive it from a single loop.
type Keyer struct {
	cfg   Config
	in    PaddleInput
	out   KeyOutput
	speed SpeedSource

	dotFilter  debouncer
	dashFilter debouncer
	dotHeld    bool // filtered paddle values from the previous tick,
	dashHeld   bool // kept for press-edge detection
	tracker    Element
	memory     Element
	send       [3]sendState // indexed by Element; send[None] unused
	counter    int          // ticks since the last phase transition
	spaces     int          // completed unit silences since the last element
	unit       int          // current dot length in ticks
	down       bool         // key line shadow
}

// New builds a Keyer around the three hardware capabilities.
func New(cfg Config, in PaddleInput, out KeyOutput, speed SpeedSource) (*Keyer, error) {
	switch {
	case in == nil:
		return nil, ErrNoPaddles
	case out == nil:
		return nil, ErrNoKey
	case speed == nil:
		return nil, ErrNoSpeed
	case cfg.Debounce < 0:
		return nil, ErrDebounce
	}
	k := &Keyer{cfg: cfg, in: in, out: out, speed: speed}
	k.dotFilter.threshold = cfg.Debounce
	k.dashFilter.threshold = cfg.Debounce
	k.unit = speed.UnitTicks()
	k.spaces = 7 // power-up counts as a long-standing silence
	return k, nil
}

// Tick advances the engine by one scheduler tick: re-sample the speed
// control when due, read and filter both paddles, arbitrate requests,
// and either start a queued element or advance the current phase.
func (k *Keyer) Tick() {
	if k.counter%sampleEvery == 0 {
		k.unit = k.speed.UnitTicks()
	}

	dot := k.dotFilter.filter(k.in.Dot())
	dash := k.dashFilter.filter(k.in.Dash())
	k.track(dot, dash)
	k.arbitrate(Dot, dot, dash)
	k.arbitrate(Dash, dash, dot)
	if !k.start() {
		k.advance()
	}
}

// track maintains the last-pressed record. At most one rule fires per
// tick, press edges taking precedence over releases.
func (k *Keyer) track(dot, dash bool) {
	switch {
	case dot && !k.dotHeld:
		k.tracker = Dot
	case dash && !k.dashHeld:
		k.tracker = Dash
	case !dot && k.tracker == Dot:
		k.tracker = None
	case !dash && k.tracker == Dash:
		k.tracker = None
	}
	k.dotHeld, k.dashHeld = dot, dash
}

// arbitrate decides whether element e may queue for sending this tick
// or must latch into memory behind the other element. Dot is always
// evaluated before dash.
func (k *Keyer) arbitrate(e Element, held, otherHeld bool) {
	if (!held && k.memory != e) || k.send[e] != stateOff {
		return
	}
	o := e.other()
	if k.cfg.Iambic {
		if k.send[o] == stateOff && (!otherHeld || k.memory == e) {
			k.send[e] = statePending
		} else if k.memory == None {
			k.memory = e
		}
		return
	}
	if k.send[o] == stateOff && (k.tracker != o || k.memory == e) {
		k.send[e] = statePending
	} else if k.tracker == e && k.memory == None {
		k.memory = e
	}
}

// start fires at most one queued element through the autospacing gate.
func (k *Keyer) start() bool {
	if k.send[Dot] == statePending && k.gateOpen() {
		k.fire(Dot)
		return true
	}
	if k.send[Dash] == statePending && k.gateOpen() {
		k.fire(Dash)
		return true
	}
	return false
}

// gateOpen applies the autospacing heuristic to a queued element. An
// element may start on the exact tick the first silence unit completes,
// once a letter gap (3 units) is reached but before the silence
// stretches toward a word gap, or after a full word gap (7 units). In
// the windows between, the operator probably wants the gap to finish,
// so dispatch waits.
func (k *Keyer) gateOpen() bool {
	if !k.cfg.Autospace {
		return true
	}
	switch {
	case k.counter == 0 && k.spaces == 1:
		return true
	case k.spaces >= 3 && k.spaces < 5:
		return true
	case k.spaces >= 7:
		return true
	}
	return false
}

func (k *Keyer) fire(e Element) {
	if k.memory == e {
		k.memory = None
	}
	k.send[e] = stateOn
	k.out.Down()
	k.down = true
	k.counter = 0
	k.spaces = 0
}

// advance moves the current phase along: finish an element's on window
// or its trailing space, or accumulate idle silence.
func (k *Keyer) advance() {
	k.counter++
	switch {
	case k.send[Dot] == stateOn:
		if k.counter >= k.unit {
			k.send[Dot] = stateSpace
			k.keyUp()
		}
	case k.send[Dot] == stateSpace:
		if k.counter >= k.unit {
			k.finish(Dot)
		}
	case k.send[Dash] == stateOn:
		if k.counter >= dashUnits*k.unit {
			k.send[Dash] = stateSpace
			k.keyUp()
		}
	case k.send[Dash] == stateSpace:
		if k.counter >= k.unit {
			k.finish(Dash)
		}
	default:
		if k.counter >= k.unit {
			k.spaces++
			k.counter = 0
		}
	}
	if k.spaces > 32766 {
		k.spaces = 7 // saturate; 7 already clears every gate
	}
}

func (k *Keyer) keyUp() {
	k.out.Up()
	k.down = false
	k.counter = 0
}

func (k *Keyer) finish(e Element) {
	k.send[e] = stateOff
	if k.cfg.Autospace {
		k.spaces = 1
	}
	k.counter = 0
}

// KeyDown reports whether the key line is asserted.
func (k *Keyer) KeyDown() bool { return k.down }

// Unit returns the unit duration currently in effect, in ticks.
func (k *Keyer) Unit() int { return k.unit }

// Sending reports whether an element is queued, keyed or in its
// trailing space.
func (k *Keyer) Sending() bool {
	return k.send[Dot] != stateOff || k.send[Dash] != stateOff
}
