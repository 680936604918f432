package bitops

// Fill sets every content bit of the bitmap to one. The final word is written
// as LastWordMask(bits) rather than all ones, forcing the padding bits to
// zero so that whole-word scans and later views of the same storage at a
// larger length never see padding as content.
//
// bits must be at least 1 and the bitmap must hold WordsFor(bits) words.
func Fill(bitmap []uint64, bits uint64) {
	l := WordsFor(bits)
	for i := uint64(0); i < l-1; i++ {
		bitmap[i] = ^uint64(0)
	}
	bitmap[l-1] = LastWordMask(bits)
}

// Zero sets every word covering bits 0..(bits-1) to zero, padding included.
// Zeroing leaves padding inert on its own, so unlike Fill no masking of the
// final word is needed.
func Zero(bitmap []uint64, bits uint64) {
	clear(bitmap[:WordsFor(bits)])
}
