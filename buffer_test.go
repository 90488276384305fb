package bufalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedBuffer(t *testing.T) {
	for _, align := range []int{1, 8, 64, 4096} {
		b := AlignedBuffer(100, align)
		require.Len(t, b, 100)
		addr := uintptr(unsafe.Pointer(&b[0]))
		assert.Zero(t, addr%uintptr(align), "align %d", align)
	}

	assert.Nil(t, AlignedBuffer(0, 8))
	assert.Nil(t, AlignedBuffer(-1, 8))
	require.Panics(t, func() { AlignedBuffer(100, 3) })
}

func TestSliceOffset(t *testing.T) {
	buf := make([]byte, 64)

	off, ok := sliceOffset(buf, buf[10:20])
	require.True(t, ok)
	assert.Equal(t, 10, off)

	off, ok = sliceOffset(buf, buf)
	require.True(t, ok)
	assert.Zero(t, off)

	_, ok = sliceOffset(buf, nil)
	assert.False(t, ok)

	_, ok = sliceOffset(buf, make([]byte, 8))
	assert.False(t, ok)

	off, ok = sliceOffset(buf, buf[63:64])
	require.True(t, ok)
	assert.Equal(t, 63, off)

	_, ok = sliceOffset(nil, buf)
	assert.False(t, ok)
}
