package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinycw/elbug/config"
	"github.com/tinycw/elbug/keyer"
	"github.com/tinycw/elbug/morse"
)

// Script is a scripted paddle session.
type Script struct {
	Keyer  Settings `yaml:"keyer"`
	Events []Event  `yaml:"events"`
	Run    int      `yaml:"run"`

	unit int
}

// Settings selects the keyer configuration for a run. Speed is given
// either as wpm or directly as unit ticks; unit wins when both are
// set.
type Settings struct {
	Mode      string `yaml:"mode"`
	Autospace bool   `yaml:"autospace"`
	Debounce  int    `yaml:"debounce"`
	WPM       int    `yaml:"wpm"`
	Unit      int    `yaml:"unit"`
}

// Event flips one paddle at a given tick.
type Event struct {
	At     int    `yaml:"at"`
	Paddle string `yaml:"paddle"`
	Action string `yaml:"action"`
}

// Load reads and validates a script file.
func Load(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Validate() error {
	switch s.Keyer.Mode {
	case "", "iambic", "last-pressed":
	default:
		return fmt.Errorf("unknown mode %q", s.Keyer.Mode)
	}
	if s.Keyer.Debounce < 0 {
		return fmt.Errorf("negative debounce %d", s.Keyer.Debounce)
	}

	unit := s.Keyer.Unit
	if unit == 0 {
		wpm := s.Keyer.WPM
		if wpm == 0 {
			wpm = 20
		}
		unit = int(morse.DitTime(wpm) / config.TickPeriod)
	}
	if unit < keyer.MinUnit || unit > keyer.MaxUnit {
		return fmt.Errorf("unit %d outside %d..%d ticks", unit, keyer.MinUnit, keyer.MaxUnit)
	}
	s.unit = unit

	if s.Run < 1 {
		return fmt.Errorf("run must be positive, got %d", s.Run)
	}
	for i, ev := range s.Events {
		if ev.At < 1 {
			return fmt.Errorf("event %d: tick %d before the run starts", i, ev.At)
		}
		switch ev.Paddle {
		case "dot", "dash", "both":
		default:
			return fmt.Errorf("event %d: unknown paddle %q", i, ev.Paddle)
		}
		switch ev.Action {
		case "press", "release":
		default:
			return fmt.Errorf("event %d: unknown action %q", i, ev.Action)
		}
	}
	return nil
}

// Config maps the settings onto the keyer configuration.
func (s *Script) Config() keyer.Config {
	return keyer.Config{
		Iambic:    s.Keyer.Mode != "last-pressed",
		Autospace: s.Keyer.Autospace,
		Debounce:  s.Keyer.Debounce,
	}
}

// UnitTicks is the resolved unit duration, valid after Validate.
func (s *Script) UnitTicks() int {
	return s.unit
}
