package bitops

// Check validates that the bitmap can back a logical length of bits. The raw
// primitives in this package perform no validation of their own; callers
// handling untrusted sizes should call Check once at the trust boundary,
// after which the unchecked forms are safe for any in-range index.
func Check(bitmap []uint64, bits uint64) error {
	if bits == 0 {
		return ErrZeroBits
	}
	if uint64(len(bitmap)) < WordsFor(bits) {
		return ErrShortBitmap
	}
	return nil
}

// CheckIndex validates the bitmap sizing and that i addresses a content bit.
func CheckIndex(bitmap []uint64, bits, i uint64) error {
	if err := Check(bitmap, bits); err != nil {
		return err
	}
	if i >= bits {
		return ErrIndexRange
	}
	return nil
}
