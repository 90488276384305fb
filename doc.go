// Package bufalloc implements region-style memory allocators for Go: an
// arena, a stack, and a pool, all serving allocations from a single
// caller-owned byte buffer.
//
// # Overview
//
// Each allocator manages a fixed buffer supplied at construction and never
// allocates on its own. This is useful for:
//
//   - Request-scoped allocation with O(1) bulk cleanup
//   - Predictable memory ceilings (the buffer is the budget)
//   - Carving sub-regions out of mapped or shared memory
//   - Reducing garbage collection pressure for short-lived regions
//
// Three disciplines are available:
//
//   - Arena: bump allocation only. Nothing is freed individually; Reset
//     rewinds the whole region. The most recent allocation can be resized
//     in place.
//   - Stack: allocations carry a small header and may be freed, strictly in
//     reverse allocation order. Resizing a non-top allocation moves it to
//     the top and retires the old block.
//   - Pool: uniform aligned chunks served from a free list, freed in any
//     order.
//
// # Basic Usage
//
//	buf := bufalloc.AlignedBuffer(1<<16, 64)
//	arena := bufalloc.NewArena(buf)
//
//	b := arena.AllocAligned(256, 16)
//	// ... use b ...
//	arena.Reset() // O(1) cleanup, buf is reused
//
// On unix, MapBuffer returns a page-aligned mapping that works well as a
// backing buffer:
//
//	buf, err := bufalloc.MapBuffer(1 << 20)
//	if err != nil { ... }
//	defer bufalloc.UnmapBuffer(buf)
//	pool, err := bufalloc.NewPool(buf, 4096, 4096)
//
// # Failure Model
//
// Exhaustion and misuse that a caller can recover from (out of memory,
// out-of-range address, out-of-order stack free, reuse of a retired block)
// are reported by a nil slice or a false return, and never leave the
// allocator partially updated. Violated preconditions, such as a
// non-power-of-two alignment, panic.
//
// # Important Notes
//
//   - Returned slices alias the backing buffer and are only valid until the
//     region is reclaimed by Reset, Free, FreeAll, or a non-top stack
//     resize.
//   - All returned memory is zeroed before it is handed out.
//   - The allocators are not goroutine-safe; wrap externally if needed.
//   - Alignment math runs on real addresses, so a buffer that starts
//     misaligned spends some of its capacity on padding. AlignedBuffer and
//     MapBuffer avoid that.
//
// # Metrics
//
// Each allocator exposes a point-in-time snapshot:
//
//	m := arena.Metrics()
//	fmt.Printf("in use: %d of %d bytes\n", m.SizeInUse, m.Capacity)
//
// Snapshots can also stream themselves as JSON objects for diagnostics.
package bufalloc
