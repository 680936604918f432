package bitops

import "errors"

var (
	ErrZeroBits    = errors.New("bitops: bit length must be at least 1")
	ErrShortBitmap = errors.New("bitops: bitmap shorter than WordsFor(bits) words")
	ErrIndexRange  = errors.New("bitops: bit index out of range")
)
