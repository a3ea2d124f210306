package keyer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerTrustsPressesInstantly(t *testing.T) {
	d := debouncer{threshold: 2}
	assert.True(t, d.filter(true))
	assert.True(t, d.filter(true))

	// a one-tick release glitch is absorbed
	assert.True(t, d.filter(false))
	assert.True(t, d.filter(true))

	// a real release needs threshold consecutive reads
	assert.True(t, d.filter(false))
	assert.False(t, d.filter(false))

	// and the next press is again instant
	assert.True(t, d.filter(true))
}

func TestDebouncerCounterResetsOnPress(t *testing.T) {
	d := debouncer{threshold: 3}
	require.True(t, d.filter(true))

	assert.True(t, d.filter(false))
	assert.True(t, d.filter(false))
	assert.True(t, d.filter(true), "press wipes the partial release")
	assert.True(t, d.filter(false))
	assert.True(t, d.filter(false))
	assert.False(t, d.filter(false), "third consecutive read accepted")
}

func TestDebouncerZeroThresholdPassesThrough(t *testing.T) {
	d := debouncer{}
	assert.True(t, d.filter(true))
	assert.False(t, d.filter(false))
	assert.True(t, d.filter(true))
}

func TestReleaseGlitchDoesNotBreakTheTrain(t *testing.T) {
	k, r := newRig(t, Config{Iambic: true, Debounce: 2}, testUnit)
	r.dot = true

	// One released read in the middle of the run must leave the keying
	// rhythm untouched.
	spans := runScript(k, r, 4*(2*testUnit+1), func(tick int) {
		switch tick {
		case 100:
			r.dot = false
		case 101:
			r.dot = true
		}
	})
	require.GreaterOrEqual(t, len(spans), 6)
	for i, s := range spans[:6] {
		if i%2 == 0 {
			assert.Equal(t, span{down: true, ticks: testUnit}, s, "span %d", i)
		} else {
			assert.Equal(t, span{down: false, ticks: testUnit + 1}, s, "span %d", i)
		}
	}
}
