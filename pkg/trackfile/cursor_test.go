package trackfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorBasicReads(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 8, c.Remaining())

	v, err := c.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v)
	assert.Equal(t, 1, c.Position())
	assert.Equal(t, 7, c.Remaining())
}

func TestCursorLittleEndian(t *testing.T) {
	t.Run("u16", func(t *testing.T) {
		v, err := NewCursor([]byte{0xAA, 0xBB}).ReadU16()
		require.NoError(t, err)
		assert.Equal(t, uint16(0xBBAA), v)
	})
	t.Run("i16", func(t *testing.T) {
		v, err := NewCursor([]byte{0xFE, 0xFF}).ReadI16()
		require.NoError(t, err)
		assert.Equal(t, int16(-2), v)
	})
	t.Run("u32", func(t *testing.T) {
		v, err := NewCursor([]byte{0x01, 0x02, 0x03, 0x04}).ReadU32()
		require.NoError(t, err)
		assert.Equal(t, uint32(0x04030201), v)
	})
	t.Run("i32", func(t *testing.T) {
		v, err := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF}).ReadI32()
		require.NoError(t, err)
		assert.Equal(t, int32(-1), v)
	})
	t.Run("i8", func(t *testing.T) {
		v, err := NewCursor([]byte{0x80}).ReadI8()
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)
	})
	t.Run("f32", func(t *testing.T) {
		// 1.0 = 0x3F800000
		v, err := NewCursor([]byte{0x00, 0x00, 0x80, 0x3F}).ReadF32()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-9)
	})
}

func TestCursorPeek(t *testing.T) {
	c := NewCursor([]byte{0x42, 0x43})
	v, err := c.PeekU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
	assert.Equal(t, 0, c.Position())

	require.NoError(t, c.Seek(2))
	_, err = c.PeekU8()
	assert.ErrorIs(t, err, ErrUnexpectedEndOfData)
	assert.Equal(t, 2, c.Position())
}

func TestCursorTruncatedReads(t *testing.T) {
	tests := []struct {
		name string
		at   int
		read func(c *Cursor) error
	}{
		{"u8", 3, func(c *Cursor) error { _, err := c.ReadU8(); return err }},
		{"u16", 2, func(c *Cursor) error { _, err := c.ReadU16(); return err }},
		{"i16", 2, func(c *Cursor) error { _, err := c.ReadI16(); return err }},
		{"u32", 0, func(c *Cursor) error { _, err := c.ReadU32(); return err }},
		{"f32", 1, func(c *Cursor) error { _, err := c.ReadF32(); return err }},
		{"bytes", 1, func(c *Cursor) error { _, err := c.ReadBytes(3); return err }},
		{"skip", 2, func(c *Cursor) error { return c.Skip(2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor([]byte{0x01, 0x02, 0x03})
			require.NoError(t, c.Seek(tt.at))
			err := tt.read(c)
			assert.True(t, errors.Is(err, ErrUnexpectedEndOfData), "got %v", err)
			// failed reads leave the position untouched
			assert.Equal(t, tt.at, c.Position())
		})
	}
}

func TestCursorSeek(t *testing.T) {
	c := NewCursor(make([]byte, 4))
	require.NoError(t, c.Seek(4))
	assert.Equal(t, 0, c.Remaining())
	_, err := c.ReadU8()
	assert.ErrorIs(t, err, ErrUnexpectedEndOfData)

	assert.ErrorIs(t, c.Seek(5), ErrUnexpectedEndOfData)
	assert.ErrorIs(t, c.Seek(-1), ErrInvalidSeek)
	assert.Equal(t, 4, c.Position())
}

func TestCursorReadBytesCopies(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30}
	c := NewCursor(data)
	b, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x20}, b)
	b[0] = 0xFF
	assert.Equal(t, byte(0x10), data[0])
	assert.Equal(t, 2, c.Position())
}
