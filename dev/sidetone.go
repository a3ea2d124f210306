//go:build tinygo

package dev

import (
	"machine"

	"tinygo.org/x/drivers/buzzer"
)

// Sidetone keys an active buzzer module together with the key line.
// The module carries its own oscillator, so the pin only gates it.
type Sidetone struct {
	pin machine.Pin
	bz  buzzer.Device
}

func NewSidetone(pin machine.Pin) *Sidetone {
	return &Sidetone{pin: pin, bz: buzzer.New(pin)}
}

func (s *Sidetone) Configure() {
	s.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (s *Sidetone) Down() {
	s.bz.On()
}

func (s *Sidetone) Up() {
	s.bz.Off()
}
