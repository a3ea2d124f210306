package morse

// Decision points, halfway between the nominal lengths on either side:
// a mark is a dash past 2 units, a gap closes the letter past 2 and
// the word past 5.
const (
	dashSplit   = (1 + DashUnits) / 2
	letterSplit = (1 + LetterGapUnits) / 2
	wordSplit   = (LetterGapUnits + WordGapUnits) / 2
)

// Tracker replays a key line into a Decoder. Feed it the line state
// once per tick together with the unit duration in effect; it measures
// mark and gap lengths and classifies each at the midpoint between the
// two nominal lengths it could be.
type Tracker struct {
	dec        *Decoder
	down       bool
	run        int // ticks spent in the current line state
	letterDone bool
	wordDone   bool
}

func NewTracker(dec *Decoder) *Tracker {
	// nothing to close until the first mark lands
	return &Tracker{dec: dec, letterDone: true, wordDone: true}
}

// Tick observes one tick of the key line.
func (t *Tracker) Tick(down bool, unit int) {
	if down != t.down {
		if t.down {
			t.dec.Mark(t.run > dashSplit*unit)
			t.letterDone, t.wordDone = false, false
		}
		t.down = down
		t.run = 0
	}
	t.run++
	if down || unit <= 0 {
		return
	}
	if !t.letterDone && t.run > letterSplit*unit {
		t.dec.EndLetter()
		t.letterDone = true
	}
	if !t.wordDone && t.run > wordSplit*unit {
		t.dec.EndWord()
		t.wordDone = true
	}
}
