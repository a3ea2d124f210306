package morse

// table is the element-sequence lookup in binary-heap layout: entry i
// branches to 2i on a dot and 2i+1 on a dash, starting from 1. Blank
// entries are sequences with no assigned character.
var table = [64]rune{
	2: 'E', 3: 'T',
	4: 'I', 5: 'A', 6: 'N', 7: 'M',
	8: 'S', 9: 'U', 10: 'R', 11: 'W', 12: 'D', 13: 'K', 14: 'G', 15: 'O',
	16: 'H', 17: 'V', 18: 'F', 20: 'L', 22: 'P', 23: 'J',
	24: 'B', 25: 'X', 26: 'C', 27: 'Y', 28: 'Z', 29: 'Q',
	32: '5', 33: '4', 35: '3', 39: '2', 47: '1',
	48: '6', 49: '=', 50: '/', 56: '7', 60: '8', 62: '9', 63: '0',
}

// Decoder folds a stream of keyed elements and gap marks back into
// characters. Sequences with no table entry are dropped without
// emitting anything.
type Decoder struct {
	idx  int
	emit func(rune)
}

// NewDecoder returns a Decoder delivering characters to emit. A word
// gap additionally delivers a single space.
func NewDecoder(emit func(rune)) *Decoder {
	return &Decoder{idx: 1, emit: emit}
}

// Mark records one keyed element.
func (d *Decoder) Mark(dash bool) {
	if d.idx == 0 {
		return // overlong sequence, wait for the next gap
	}
	d.idx *= 2
	if dash {
		d.idx++
	}
	if d.idx >= len(table) {
		d.idx = 0
	}
}

// EndLetter closes the character under construction.
func (d *Decoder) EndLetter() {
	if d.idx > 1 {
		if c := table[d.idx]; c != 0 && d.emit != nil {
			d.emit(c)
		}
	}
	d.idx = 1
}

// EndWord closes the character under construction and marks a word
// boundary.
func (d *Decoder) EndWord() {
	d.EndLetter()
	if d.emit != nil {
		d.emit(' ')
	}
}
