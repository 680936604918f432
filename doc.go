package bitops

/*

# Bitmap primitives for Forestrie (fixed word size, length explicit)

This package provides primitive building blocks for packed bitmaps: boolean
arrays stored one bit per index across uint64 words, intended for free-index
tracking and similar bookkeeping inside preallocated regions.

It mirrors the `go-merklelog/mmr` style:

- small, composable functions
- explicit storage layout, no hidden metadata
- index arithmetic on caller-owned slices
- a burden of knowledge on the caller for hot paths

## Storage model

The caller allocates a `[]uint64` of `WordsFor(bits)` words and passes the
logical bit length `bits` on every call. There is no bitmap object and no
stored length: every operation is stateless and reentrant, and the same
storage may be viewed at different lengths so long as the caller is
consistent within one sequence of operations.

Bit `i` lives in word `i/WordBits` at offset `i%WordBits`, with LSB0
numbering: bit 0 of a word is its least significant bit. This matches the
`BitOrderLSB0` convention used by the bloom package.

## Content bits and padding bits

Bits at indices below `bits` are content. Bits of the final word at or above
`bits` are padding and are never meaningful. `Fill` forces padding to zero
rather than writing the final word as all ones, so that word-at-a-time scans
can test whole words without mistaking padding for content, and so a later
view of the same storage at a larger length sees zeros rather than garbage.
`Zero` needs no such masking; zeroed padding is already inert.

## Scanning and the sentinel convention

`NextSet` and `NextZero` return the lowest matching content index at or after
`start`, or the logical length itself when nothing matches. The length
sentinel keeps the scanners total functions and permits flagless loops:

	for i := NextSet(bm, n, 0); i < n; i = NextSet(bm, n, i+1) {
		...
	}

`IterateSet` and `IterateZero` package exactly that loop.

## Checked and unchecked forms

The primitives perform no bounds checking: passing an index or length the
storage cannot back is undefined behaviour, not a reported error. Callers
handling untrusted sizes should validate once at the trust boundary with
`Check` or `CheckIndex` and use the raw forms from then on.

*/
