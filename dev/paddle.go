//go:build tinygo

package dev

import "machine"

// Paddles reads the two lever contacts. The inputs are pulled up and
// the levers switch them to ground, so a low read is a press.
type Paddles struct {
	dot     machine.Pin
	dash    machine.Pin
	reverse bool
}

// NewPaddles wires the two levers. reverse swaps them for left-handed
// operation without resoldering.
func NewPaddles(dot, dash machine.Pin, reverse bool) (*Paddles, error) {
	if dot == dash {
		return nil, ErrPaddlePins
	}
	return &Paddles{dot: dot, dash: dash, reverse: reverse}, nil
}

func (p *Paddles) Configure() {
	p.dot.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	p.dash.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
}

func (p *Paddles) Dot() bool {
	if p.reverse {
		return !p.dash.Get()
	}
	return !p.dot.Get()
}

func (p *Paddles) Dash() bool {
	if p.reverse {
		return !p.dot.Get()
	}
	return !p.dash.Get()
}
