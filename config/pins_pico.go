//go:build rp2040

package config

import "machine"

var (
	PaddleDot  = machine.GP14
	PaddleDash = machine.GP15

	KeyOut = machine.GP16
	Buzzer = machine.GP17

	SpeedPot = machine.ADC{Pin: machine.ADC0}

	EncoderA = machine.GP7
	EncoderB = machine.GP6

	StatusLED = machine.LED
)
