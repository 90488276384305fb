package bufalloc

// IsPowerOfTwo reports whether x is a power of two. Zero is not a power of
// two.
func IsPowerOfTwo(x uintptr) bool {
	return x > 0 && x&(x-1) == 0
}

// AlignForward returns the smallest address greater than or equal to addr
// that is a multiple of align. Align must be a power of two.
func AlignForward(addr, align uintptr) uintptr {
	if !IsPowerOfTwo(align) {
		panic("bufalloc: align must be a power of two")
	}
	return (addr + align - 1) &^ (align - 1)
}

// paddingWithHeader returns the number of padding bytes needed to advance
// addr to an align-aligned boundary while leaving at least headerSize bytes
// of padding to hold an allocation header. When the natural alignment
// padding is too small for the header, the result is extended by whole
// multiples of align.
func paddingWithHeader(addr, align, headerSize uintptr) uintptr {
	if !IsPowerOfTwo(align) {
		panic("bufalloc: align must be a power of two")
	}
	padding := (align - addr&(align-1)) & (align - 1)
	if padding < headerSize {
		needed := headerSize - padding
		padding += align * ((needed + align - 1) / align)
	}
	return padding
}
