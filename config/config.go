package config

import "time"

const (
	// TickPeriod paces the keying loop. Unit durations and silence
	// windows are whole numbers of these.
	TickPeriod = time.Millisecond

	// PotOversample is how many ADC reads are averaged per speed
	// sample.
	PotOversample = 4
)
