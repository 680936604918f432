package bitops

// TestBit reports whether bit i of the bitmap is set. i must address a
// content bit; no bounds checking is performed. See CheckIndex for the
// validated form.
func TestBit(bitmap []uint64, i uint64) bool {
	return bitmap[i/WordBits]&(1<<(i%WordBits)) != 0
}

// SetBit sets bit i of the bitmap to one.
func SetBit(bitmap []uint64, i uint64) {
	bitmap[i/WordBits] |= 1 << (i % WordBits)
}

// ClearBit sets bit i of the bitmap to zero.
func ClearBit(bitmap []uint64, i uint64) {
	bitmap[i/WordBits] &^= 1 << (i % WordBits)
}
