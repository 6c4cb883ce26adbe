package bitmask

// BitMask is a set of up to eight boolean flags packed into a single byte.
type BitMask byte

// SetBit sets the bit at the given position.
func (bitmask BitMask) SetBit(pos uint) BitMask {
	return bitmask | 1<<pos
}

// ClearBit clears the bit at the given position.
func (bitmask BitMask) ClearBit(pos uint) BitMask {
	return bitmask &^ (1 << pos)
}

// HasBit checks whether the bit at the given position is set.
func (bitmask BitMask) HasBit(pos uint) bool {
	return bitmask&(1<<pos) != 0
}

// ModifyBit sets or clears the bit at the given position, given the supplied state bool.
func (bitmask BitMask) ModifyBit(pos uint, state bool) BitMask {
	if state {
		return bitmask.SetBit(pos)
	}

	return bitmask.ClearBit(pos)
}

// HasUnknownBits reports whether any bit at or above the given position is set.
func (bitmask BitMask) HasUnknownBits(firstUnknown uint) bool {
	return bitmask>>firstUnknown != 0
}
