//go:build tinygo

package dev

import "machine"

// KeyLine drives one output pin from the keying loop, logic high while
// the key is down. The same type serves the transmitter line and the
// status LED.
type KeyLine struct {
	pin machine.Pin
}

func NewKeyLine(pin machine.Pin) *KeyLine {
	return &KeyLine{pin: pin}
}

func (l *KeyLine) Configure() {
	l.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l.pin.Low()
}

func (l *KeyLine) Down() {
	l.pin.High()
}

func (l *KeyLine) Up() {
	l.pin.Low()
}
