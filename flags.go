package px

// controlFlags is the 9-byte marker-nibble table from the container header.
// Each entry is a nibble value in [0, 16); the entry's index selects the
// byte-pair synthesis rule in nibblePair.
type controlFlags [ControlFlagCount]byte

// find returns the lowest index whose entry equals nibble. The scan must stay
// a linear first-match search: duplicate entries resolve to the lowest index,
// and an associative lookup would not preserve that order.
func (f *controlFlags) find(nibble byte) (int, bool) {
	for i, v := range f {
		if v == nibble {
			return i, true
		}
	}

	return 0, false
}

// nibblePair synthesizes the two output bytes for a control-flag match at
// index with base nibble nbLow.
//
// Index 0 doubles the nibble into both bytes. For indices 1..8 the base is
// pre-adjusted once (+1 for index 1, -1 for index 5), copied into four nibble
// slots, and exactly one slot gets a further +-1 selected by the index. The
// pair is then (n0<<4|n1, n2<<4|n3).
func nibblePair(index int, nbLow byte) (byte, byte) {
	if index == 0 {
		b := nbLow<<4 | nbLow

		return b, b
	}

	v := nbLow
	switch index {
	case 1:
		v++
	case 5:
		v--
	}

	n := [4]byte{v, v, v, v}
	switch index {
	case 1:
		n[0]--
	case 2:
		n[1]--
	case 3:
		n[2]--
	case 4:
		n[3]--
	case 5:
		n[0]++
	case 6:
		n[1]++
	case 7:
		n[2]++
	case 8:
		n[3]++
	default:
		// Unreachable: find scans a 9-entry table, so index is always 0..8.
		panic("px: control flag index out of range")
	}

	return n[0]<<4 | n[1], n[2]<<4 | n[3]
}
