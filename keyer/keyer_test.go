package keyer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rig is a scripted stand-in for all three hardware capabilities: the
// paddle lines and the speed value are plain fields, and the key line
// records what the engine drives onto it.
type rig struct {
	dot, dash bool
	unit      int
	line      bool
}

func (r *rig) Dot() bool      { return r.dot }
func (r *rig) Dash() bool     { return r.dash }
func (r *rig) UnitTicks() int { return r.unit }
func (r *rig) Down()          { r.line = true }
func (r *rig) Up()            { r.line = false }

func newRig(t *testing.T, cfg Config, unit int) (*Keyer, *rig) {
	t.Helper()
	r := &rig{unit: unit}
	k, err := New(cfg, r, r, r)
	require.NoError(t, err)
	return k, r
}

// span is a run of consecutive ticks with the key line in one state.
type span struct {
	down  bool
	ticks int
}

// runScript advances the engine n ticks, calling at (when given) with
// the 1-based tick number before each tick so the script can move the
// paddles, and folds the key line into spans.
func runScript(k *Keyer, r *rig, n int, at func(tick int)) []span {
	var out []span
	for i := 1; i <= n; i++ {
		if at != nil {
			at(i)
		}
		k.Tick()
		if len(out) == 0 || out[len(out)-1].down != r.line {
			out = append(out, span{down: r.line})
		}
		out[len(out)-1].ticks++
	}
	return out
}

func run(k *Keyer, r *rig, n int) []span {
	return runScript(k, r, n, nil)
}

const testUnit = 30

func TestContinuousDots(t *testing.T) {
	k, r := newRig(t, Config{Iambic: true}, testUnit)
	r.dot = true

	spans := run(k, r, 4*(2*testUnit+1))
	require.GreaterOrEqual(t, len(spans), 7)
	for i, s := range spans[:7] {
		if i%2 == 0 {
			assert.True(t, s.down, "span %d should be key down", i)
			assert.Equal(t, testUnit, s.ticks, "dot length, span %d", i)
		} else {
			assert.False(t, s.down, "span %d should be key up", i)
			assert.Equal(t, testUnit+1, s.ticks, "gap length, span %d", i)
		}
	}
}

func TestContinuousDashes(t *testing.T) {
	k, r := newRig(t, Config{Iambic: true}, testUnit)
	r.dash = true

	spans := run(k, r, 3*(4*testUnit+1))
	require.GreaterOrEqual(t, len(spans), 5)
	for i, s := range spans[:5] {
		if i%2 == 0 {
			assert.True(t, s.down)
			assert.Equal(t, 3*testUnit, s.ticks, "dash length, span %d", i)
		} else {
			assert.False(t, s.down)
			assert.Equal(t, testUnit+1, s.ticks, "gap length, span %d", i)
		}
	}
}

func TestIambicSqueezeAlternates(t *testing.T) {
	k, r := newRig(t, Config{Iambic: true}, testUnit)
	r.dot, r.dash = true, true

	// Both paddles land on the same tick, so neither is promoted
	// outright; dot goes through memory and starts one tick later,
	// then the elements must strictly alternate.
	spans := run(k, r, 3*(6*testUnit+2)+1)
	require.GreaterOrEqual(t, len(spans), 8)
	assert.Equal(t, span{down: false, ticks: 1}, spans[0])

	want := []int{testUnit, 3 * testUnit} // dot, dash, dot, dash, ...
	for i, s := range spans[1:8] {
		if i%2 == 0 {
			assert.True(t, s.down)
			assert.Equal(t, want[(i/2)%2], s.ticks, "element %d", i/2)
		} else {
			assert.False(t, s.down)
			assert.Equal(t, testUnit+1, s.ticks, "gap after element %d", i/2)
		}
	}
}

func TestIambicStaggeredSqueezeAlternates(t *testing.T) {
	k, r := newRig(t, Config{Iambic: true}, testUnit)

	spans := runScript(k, r, 3*(6*testUnit+2), func(tick int) {
		switch tick {
		case 1:
			r.dot = true
		case 5:
			r.dash = true
		}
	})
	require.GreaterOrEqual(t, len(spans), 7)

	want := []int{testUnit, 3 * testUnit}
	for i, s := range spans[:7] {
		if i%2 == 0 {
			assert.True(t, s.down)
			assert.Equal(t, want[(i/2)%2], s.ticks, "element %d", i/2)
		} else {
			assert.False(t, s.down)
			assert.Equal(t, testUnit+1, s.ticks)
		}
	}
}

func TestIambicReleaseBothSendsLatchedElement(t *testing.T) {
	k, r := newRig(t, Config{Iambic: true}, testUnit)

	// Dash leads, dot joins one tick later and latches. Both paddles
	// are released mid-dash; the latched dot must still be sent, then
	// the line goes quiet.
	total := 40 * testUnit
	spans := runScript(k, r, total, func(tick int) {
		switch tick {
		case 1:
			r.dash = true
		case 2:
			r.dot = true
		case 20:
			r.dash = false
			r.dot = false
		}
	})

	require.Len(t, spans, 4)
	assert.Equal(t, span{down: true, ticks: 3 * testUnit}, spans[0], "full dash despite release")
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[1])
	assert.Equal(t, span{down: true, ticks: testUnit}, spans[2], "latched dot")
	assert.False(t, spans[3].down)
	assert.Equal(t, total-5*testUnit-1, spans[3].ticks, "quiet after the latched dot")
}

func TestLastPressedNewerPaddleTakesOver(t *testing.T) {
	k, r := newRig(t, Config{}, testUnit)

	// Dot held from tick 1, dash joins at tick 5 and both stay held:
	// one dot, then dashes repeat for as long as dash remains the
	// newest still-held paddle.
	spans := runScript(k, r, 3*(4*testUnit+1)+2*testUnit+1, func(tick int) {
		switch tick {
		case 1:
			r.dot = true
		case 5:
			r.dash = true
		}
	})
	require.GreaterOrEqual(t, len(spans), 6)
	assert.Equal(t, span{down: true, ticks: testUnit}, spans[0], "initial dot")
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[1])
	for i := 2; i < 6; i += 2 {
		assert.Equal(t, span{down: true, ticks: 3 * testUnit}, spans[i], "repeated dash")
		assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[i+1])
	}
}

func TestLastPressedReleaseWinnerResumesLoser(t *testing.T) {
	k, r := newRig(t, Config{}, testUnit)

	// As above, but the winning dash paddle is released in the middle
	// of its element. The dash still completes in full, and the
	// continuously held dot resumes after the trailing space with
	// nothing dropped or doubled.
	spans := runScript(k, r, 14*testUnit, func(tick int) {
		switch tick {
		case 1:
			r.dot = true
		case 5:
			r.dash = true
		case 4*testUnit + 10: // mid second element
			r.dash = false
		}
	})
	require.GreaterOrEqual(t, len(spans), 6)
	assert.Equal(t, span{down: true, ticks: testUnit}, spans[0])
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[1])
	assert.Equal(t, span{down: true, ticks: 3 * testUnit}, spans[2], "dash completes")
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[3])
	assert.Equal(t, span{down: true, ticks: testUnit}, spans[4], "dot resumes")
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[5])
}

func TestLastPressedSimultaneousPressPrefersDot(t *testing.T) {
	k, r := newRig(t, Config{}, testUnit)
	r.dot, r.dash = true, true

	spans := run(k, r, 3*(2*testUnit+1))
	require.GreaterOrEqual(t, len(spans), 5)
	for i, s := range spans[:5] {
		if i%2 == 0 {
			assert.Equal(t, span{down: true, ticks: testUnit}, s, "dot repeats, span %d", i)
		} else {
			assert.Equal(t, span{down: false, ticks: testUnit + 1}, s)
		}
	}
}

func TestLastPressedTapHeldPastBoundaryInserts(t *testing.T) {
	k, r := newRig(t, Config{}, testUnit)

	// Dash tapped during a dot element but still held when the dot's
	// trailing space ends: exactly one dash goes out, then the held
	// dot paddle carries on.
	spans := runScript(k, r, 12*testUnit, func(tick int) {
		switch tick {
		case 1:
			r.dot = true
		case 10:
			r.dash = true
		case 2*testUnit + 5: // released only after the boundary
			r.dash = false
		}
	})
	require.GreaterOrEqual(t, len(spans), 6)
	assert.Equal(t, span{down: true, ticks: testUnit}, spans[0])
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[1])
	assert.Equal(t, span{down: true, ticks: 3 * testUnit}, spans[2], "inserted dash")
	assert.Equal(t, span{down: false, ticks: testUnit + 1}, spans[3])
	assert.Equal(t, span{down: true, ticks: testUnit}, spans[4], "dots resume")
}

func TestLastPressedReleasedTapWaitsForDotsToStop(t *testing.T) {
	k, r := newRig(t, Config{}, testUnit)

	// A dash tap fully released before the dot's boundary stays in
	// memory. The held dot keeps its priority; the dash comes out only
	// once the dot paddle is let go.
	stop := 4*testUnit + 20
	spans := runScript(k, r, 12*testUnit, func(tick int) {
		switch tick {
		case 1:
			r.dot = true
		case 10:
			r.dash = true
		case 14:
			r.dash = false
		case stop:
			r.dot = false
		}
	})

	var downs []int
	for _, s := range spans {
		if s.down {
			downs = append(downs, s.ticks)
		}
	}
	require.GreaterOrEqual(t, len(downs), 3)
	assert.Equal(t, testUnit, downs[0])
	assert.Equal(t, testUnit, downs[1], "dots keep priority over the latched dash")
	assert.Equal(t, 3*testUnit, downs[len(downs)-1], "latched dash sent after release")
	assert.False(t, spans[len(spans)-1].down)
}

func TestMemoryAndActivityInvariants(t *testing.T) {
	for _, cfg := range []Config{
		{Iambic: true},
		{Iambic: true, Autospace: true},
		{},
		{Autospace: true},
	} {
		k, r := newRig(t, cfg, testUnit)
		rng := rand.New(rand.NewSource(73))
		for i := 0; i < 20000; i++ {
			if rng.Intn(7) == 0 {
				r.dot = !r.dot
			}
			if rng.Intn(7) == 0 {
				r.dash = !r.dash
			}
			k.Tick()

			active := 0
			for _, e := range []Element{Dot, Dash} {
				if k.send[e] != stateOff {
					active++
				}
				if k.memory == e {
					require.NotEqual(t, stateOn, k.send[e], "tick %d cfg %+v", i, cfg)
					require.NotEqual(t, stateSpace, k.send[e], "tick %d cfg %+v", i, cfg)
				}
			}
			require.LessOrEqual(t, active, 1, "tick %d cfg %+v", i, cfg)
			require.Equal(t, k.down, r.line, "key shadow out of step, tick %d", i)
		}
	}
}

func TestConstructorRejectsBadArguments(t *testing.T) {
	r := &rig{unit: testUnit}

	_, err := New(DefaultConfig(), nil, r, r)
	assert.ErrorIs(t, err, ErrNoPaddles)
	_, err = New(DefaultConfig(), r, nil, r)
	assert.ErrorIs(t, err, ErrNoKey)
	_, err = New(DefaultConfig(), r, r, nil)
	assert.ErrorIs(t, err, ErrNoSpeed)
	_, err = New(Config{Debounce: -1}, r, r, r)
	assert.ErrorIs(t, err, ErrDebounce)

	k, err := New(DefaultConfig(), r, r, r)
	require.NoError(t, err)
	assert.Equal(t, testUnit, k.Unit())
	assert.False(t, k.KeyDown())
	assert.False(t, k.Sending())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Iambic)
	assert.False(t, cfg.Autospace)
	assert.Equal(t, 2, cfg.Debounce)
}
