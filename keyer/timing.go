package keyer

const (
	// sampleEvery sets the speed re-read cadence. The check rides on
	// the shared phase counter, which resets on every transition, so
	// the wall-clock cadence follows the keying rhythm rather than a
	// fixed clock.
	sampleEvery = 10

	dashUnits = 3

	// MinUnit and MaxUnit bound the unit durations UnitFromSample
	// produces over the full 10-bit input range.
	MinUnit = 30
	MaxUnit = 200
)

// UnitFromSample maps a 10-bit speed-control sample to a unit duration
// in ticks: 0 is the fastest setting, 1023 the slowest.
func UnitFromSample(raw uint16) int {
	return MinUnit + int(raw)/6
}
