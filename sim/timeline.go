// Package sim runs scripted paddle sessions against the keyer on a
// host machine, recording the key line and reading it back as text.
package sim

import (
	"fmt"
	"strings"
)

// Span is one stretch of the key line.
type Span struct {
	Down  bool
	Ticks int
}

// Timeline stands in for the key output and records the line as
// alternating down and up spans. Tick must be called once per keying
// tick, after the keyer has run, so the tick is accounted to the state
// the line ended the tick in.
type Timeline struct {
	spans []Span
	down  bool
}

func (t *Timeline) Down() {
	t.down = true
}

func (t *Timeline) Up() {
	t.down = false
}

func (t *Timeline) Tick() {
	if n := len(t.spans); n > 0 && t.spans[n-1].Down == t.down {
		t.spans[n-1].Ticks++
		return
	}
	t.spans = append(t.spans, Span{Down: t.down, Ticks: 1})
}

func (t *Timeline) Spans() []Span {
	return t.spans
}

// Total is the number of ticks accounted so far.
func (t *Timeline) Total() int {
	var n int
	for _, s := range t.spans {
		n += s.Ticks
	}
	return n
}

// String renders the spans as D<ticks> for key down and U<ticks> for
// key up.
func (t *Timeline) String() string {
	var b strings.Builder
	for i, s := range t.spans {
		if i > 0 {
			b.WriteByte(' ')
		}
		mark := "U"
		if s.Down {
			mark = "D"
		}
		fmt.Fprintf(&b, "%s%d", mark, s.Ticks)
	}
	return b.String()
}
