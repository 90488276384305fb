//go:build unix

package bufalloc

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MapBuffer obtains a size-byte anonymous memory mapping suitable as a
// backing buffer. Mappings start on a page boundary, so any reasonable
// chunk or allocation alignment is satisfied from offset zero. Release the
// buffer with UnmapBuffer once every allocator using it is done.
func MapBuffer(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Errorf("bufalloc: mapping size must be positive, got %d", size)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "bufalloc: cannot map %d bytes", size)
	}
	return b, nil
}

// UnmapBuffer releases a buffer obtained from MapBuffer. Every slice handed
// out by an allocator over the buffer becomes invalid.
func UnmapBuffer(b []byte) error {
	if b == nil {
		return nil
	}
	return errors.Wrap(unix.Munmap(b), "bufalloc: cannot unmap buffer")
}
