package trackfile

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Cursor reads little endian values from an in-memory buffer.
// The buffer is never modified. A Cursor is not safe for concurrent use,
// use one per goroutine.
type Cursor struct {
	data []byte
	// current read position, 0 <= pos <= len(data)
	pos int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) Len() int       { return len(c.data) }
func (c *Cursor) Position() int  { return c.pos }
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the cursor to an absolute position. Seeking to Len() is
// valid, any read from there fails.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 {
		return fmt.Errorf("seek to %d: %w", pos, ErrInvalidSeek)
	}
	if pos > len(c.data) {
		return fmt.Errorf("seek to 0x%X beyond 0x%X: %w", pos, len(c.data), ErrUnexpectedEndOfData)
	}
	c.pos = pos
	return nil
}

// take returns the next n bytes without copying and advances the cursor.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || n > len(c.data)-c.pos {
		return nil, fmt.Errorf("read %d bytes at 0x%X: %w", n, c.pos, ErrUnexpectedEndOfData)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

// ReadBytes returns a copy of the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b)
	return ret, nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// PeekU8 returns the next byte without advancing.
func (c *Cursor) PeekU8() (uint8, error) {
	if c.pos >= len(c.data) {
		return 0, fmt.Errorf("peek at 0x%X: %w", c.pos, ErrUnexpectedEndOfData)
	}
	return c.data[c.pos], nil
}
