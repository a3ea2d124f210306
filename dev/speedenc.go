//go:build tinygo

package dev

import (
	"sync/atomic"
	"time"

	"tinygo.org/x/drivers/encoders"

	"github.com/tinycw/elbug/keyer"
	"github.com/tinycw/elbug/morse"
)

// SpeedEncoder turns a quadrature encoder into the unit duration
// source: one detent is one word per minute. The setting lives in an
// atomic so a display goroutine can read it while the keying loop
// samples.
type SpeedEncoder struct {
	enc  *encoders.QuadratureDevice
	tick time.Duration
	min  int32
	max  int32
	wpm  atomic.Int32
	last int
}

func NewSpeedEncoder(enc *encoders.QuadratureDevice, tick time.Duration, start, min, max int) (*SpeedEncoder, error) {
	if min <= 0 || max < min {
		return nil, ErrSpeedRange
	}
	s := &SpeedEncoder{enc: enc, tick: tick, min: int32(min), max: int32(max)}
	if start < min {
		start = min
	}
	if start > max {
		start = max
	}
	s.wpm.Store(int32(start))
	return s, nil
}

// Poll folds encoder movement since the last call into the speed.
// The encoder counts twice per detent, so only whole detents are
// consumed and half steps stay pending.
func (s *SpeedEncoder) Poll() {
	pos := s.enc.Position()
	step := (pos - s.last) / 2
	if step == 0 {
		return
	}
	s.last += step * 2

	w := s.wpm.Load() + int32(step)
	if w < s.min {
		w = s.min
	}
	if w > s.max {
		w = s.max
	}
	s.wpm.Store(w)
}

func (s *SpeedEncoder) WPM() int {
	return int(s.wpm.Load())
}

// UnitTicks converts the speed setting to whole ticks of the keying
// loop, held inside the same band the pot covers.
func (s *SpeedEncoder) UnitTicks() int {
	u := int(morse.DitTime(s.WPM()) / s.tick)
	if u < keyer.MinUnit {
		u = keyer.MinUnit
	}
	if u > keyer.MaxUnit {
		u = keyer.MaxUnit
	}
	return u
}
