package bitops

import "math/bits"

// WordBits is the number of bits in one storage word.
const WordBits = 64

// WordsFor returns the number of uint64 words needed to store bits
// 0..(bits-1). The computation does not overflow for any uint64 length.
func WordsFor(bits uint64) uint64 {
	if bits == 0 {
		return 0
	}
	return (bits-1)/WordBits + 1
}

// FirstWordMask returns the mask for the least significant word touched by a
// scan beginning at start. Bit positions at or above start%WordBits are set,
// positions below it are clear.
func FirstWordMask(start uint64) uint64 {
	return ^uint64(0) << (start % WordBits)
}

// LastWordMask returns the mask selecting the content bits of the most
// significant word of a bitmap with logical length bits. When bits is an
// exact multiple of WordBits the whole word is content and the mask is all
// ones; otherwise only the low bits%WordBits positions are set and the rest
// of the word is padding.
func LastWordMask(bits uint64) uint64 {
	return ^uint64(0) >> (-bits % WordBits)
}

// FFS returns the plus-one position of the least significant set bit in w,
// or zero when w is zero.
func FFS(w uint64) uint64 {
	if w == 0 {
		return 0
	}
	return uint64(bits.TrailingZeros64(w)) + 1
}
