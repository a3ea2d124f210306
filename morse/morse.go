// Package morse holds the Morse timing arithmetic and the receive-side
// decoding used to play back what a keyer put on the line.
package morse

import "time"

// ITU ratios: a dash is three units, the gap inside a character one,
// between characters three, between words seven. PARIS, the reference
// word behind the WPM scale, is 50 units long.
const (
	DashUnits      = 3
	LetterGapUnits = 3
	WordGapUnits   = 7

	unitsPerWord = 50
)

// DitTime returns the unit duration for a speed in words per minute.
func DitTime(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(unitsPerWord*wpm)
}

// WPM returns the speed, rounded to whole words per minute, that a
// unit duration corresponds to.
func WPM(dit time.Duration) int {
	if dit <= 0 {
		return 0
	}
	return int((time.Minute + dit*unitsPerWord/2) / (dit * unitsPerWord))
}
