//go:build tinygo

package dev

import (
	"machine"

	"github.com/tinycw/elbug/keyer"
)

// SpeedPot derives the unit duration from a potentiometer wiper. Each
// read averages a few samples to calm the wiper, then drops the result
// to ten bits before mapping onto the tick band.
type SpeedPot struct {
	adc     machine.ADC
	samples int
}

func NewSpeedPot(adc machine.ADC, samples int) *SpeedPot {
	if samples < 1 {
		samples = 1
	}
	return &SpeedPot{adc: adc, samples: samples}
}

func (p *SpeedPot) Configure() {
	p.adc.Configure(machine.ADCConfig{})
}

func (p *SpeedPot) UnitTicks() int {
	var sum uint32
	for n := p.samples; n > 0; n-- {
		sum += uint32(p.adc.Get())
	}
	raw := uint16(sum / uint32(p.samples))
	return keyer.UnitFromSample(raw >> 6)
}
