package bitops

// NextSet returns the index of the lowest set content bit at or after start,
// or bits when none remains. start values at or beyond bits return bits
// immediately, and padding bits in the final word are never reported
// regardless of their stored value.
//
// The scan proceeds one word at a time. Only the first word needs masking:
// positions before start are stripped with FirstWordMask, and nothing before
// start exists in later words.
func NextSet(bitmap []uint64, bits, start uint64) uint64 {
	if start >= bits {
		return bits
	}

	l := WordsFor(bits)
	first := start / WordBits
	base := start - start%WordBits

	t := bitmap[first] & FirstWordMask(start)
	for i := first + 1; t == 0 && i < l; i++ {
		base += WordBits
		t = bitmap[i]
	}
	if t == 0 {
		return bits
	}

	pos := base + FFS(t) - 1
	if pos >= bits {
		return bits
	}
	return pos
}

// NextZero returns the index of the lowest clear content bit at or after
// start, or bits when every content bit from start onward is set.
//
// Words are inverted before testing so that a clear content bit reads as a
// candidate. On the first word the positions before start are forced set
// ahead of the inversion; inverting first would turn clear bits below start
// into apparent matches.
func NextZero(bitmap []uint64, bits, start uint64) uint64 {
	if start >= bits {
		return bits
	}

	l := WordsFor(bits)
	first := start / WordBits
	base := start - start%WordBits

	t := ^(bitmap[first] | ^FirstWordMask(start))
	for i := first + 1; t == 0 && i < l; i++ {
		base += WordBits
		t = ^bitmap[i]
	}
	if t == 0 {
		return bits
	}

	pos := base + FFS(t) - 1
	if pos >= bits {
		return bits
	}
	return pos
}

// FirstSet is NextSet from the start of the bitmap.
func FirstSet(bitmap []uint64, bits uint64) uint64 {
	return NextSet(bitmap, bits, 0)
}

// FirstZero is NextZero from the start of the bitmap.
func FirstZero(bitmap []uint64, bits uint64) uint64 {
	return NextZero(bitmap, bits, 0)
}
