package bitops

// IterateSet calls f with the index of every set content bit, in ascending
// order.
func IterateSet(bitmap []uint64, bits uint64, f func(i uint64)) {
	for i := NextSet(bitmap, bits, 0); i < bits; i = NextSet(bitmap, bits, i+1) {
		f(i)
	}
}

// IterateZero calls f with the index of every clear content bit, in ascending
// order.
func IterateZero(bitmap []uint64, bits uint64, f func(i uint64)) {
	for i := NextZero(bitmap, bits, 0); i < bits; i = NextZero(bitmap, bits, i+1) {
		f(i)
	}
}
