package keyer

// Element identifies one of the two Morse elements. None marks an
// empty tracker or memory slot.
type Element int

const (
	None Element = iota
	Dot
	Dash
)

func (e Element) String() string {
	switch e {
	case Dot:
		return "dot"
	case Dash:
		return "dash"
	}
	return "none"
}

func (e Element) other() Element {
	if e == Dot {
		return Dash
	}
	return Dot
}

// sendState is the keying phase of a single element. Each element walks
// the closed cycle off, pending, on, space, off; pending may persist
// for several ticks while the autospacing gate withholds dispatch.
type sendState int

const (
	stateOff sendState = iota
	statePending
	stateOn
	stateSpace
)

func (s sendState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateOn:
		return "on"
	case stateSpace:
		return "space"
	}
	return "off"
}
