package sim

import (
	"github.com/tinycw/elbug/keyer"
	"github.com/tinycw/elbug/morse"
)

// Paddles is a scripted paddle pair.
type Paddles struct {
	dot  bool
	dash bool
}

func (p *Paddles) Dot() bool {
	return p.dot
}

func (p *Paddles) Dash() bool {
	return p.dash
}

func (p *Paddles) apply(ev Event) {
	press := ev.Action == "press"
	switch ev.Paddle {
	case "dot":
		p.dot = press
	case "dash":
		p.dash = press
	case "both":
		p.dot = press
		p.dash = press
	}
}

type fixedSpeed int

func (f fixedSpeed) UnitTicks() int {
	return int(f)
}

// Harness runs a keyer against scripted paddles, recording the key
// line and decoding it back to text.
type Harness struct {
	k        *keyer.Keyer
	paddles  *Paddles
	timeline *Timeline
	tracker  *morse.Tracker
	unit     int
	text     []rune
}

func NewHarness(cfg keyer.Config, unit int) (*Harness, error) {
	h := &Harness{
		paddles:  &Paddles{},
		timeline: &Timeline{},
		unit:     unit,
	}
	k, err := keyer.New(cfg, h.paddles, h.timeline, fixedSpeed(unit))
	if err != nil {
		return nil, err
	}
	h.k = k
	h.tracker = morse.NewTracker(morse.NewDecoder(func(r rune) {
		h.text = append(h.text, r)
	}))
	return h, nil
}

// Step runs one keying tick and accounts it.
func (h *Harness) Step() {
	h.k.Tick()
	h.timeline.Tick()
	h.tracker.Tick(h.k.KeyDown(), h.k.Unit())
}

// Play runs the scripted session from the current tick on.
func (h *Harness) Play(s *Script) {
	for tick := 1; tick <= s.Run; tick++ {
		for _, ev := range s.Events {
			if ev.At == tick {
				h.paddles.apply(ev)
			}
		}
		h.Step()
	}
}

// Drain releases the paddles and idles long enough for the decoder to
// close the last letter and word.
func (h *Harness) Drain() {
	h.paddles.dot = false
	h.paddles.dash = false
	for i := 0; i < (morse.WordGapUnits+1)*h.unit; i++ {
		h.Step()
	}
}

func (h *Harness) Timeline() *Timeline {
	return h.timeline
}

func (h *Harness) Spans() []Span {
	return h.timeline.Spans()
}

// Text is everything decoded off the key line so far.
func (h *Harness) Text() string {
	return string(h.text)
}
