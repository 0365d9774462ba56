package trackfile

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

func TestParseOffsets(t *testing.T) {
	data := make([]byte, OffsetTableAddress+OffsetTableLen+2)
	for i, v := range []int16{1, 2, 3, 4, -16, 0x20, 0xF0} {
		binary.LittleEndian.PutUint16(data[OffsetTableAddress+2*i:], uint16(v))
	}
	c := NewCursor(data)
	got, err := ParseOffsets(c)
	require.NoError(t, err)
	want := &model.TrackOffsets{
		BaseOffset:       1,
		Unknown2:         2,
		Unknown3:         3,
		Unknown4:         4,
		ChecksumPosition: -16,
		ObjectData:       0x20,
		TrackData:        0xF0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseOffsets() mismatch (-want +got):\n%v", diff)
	}
	assert.Equal(t, OffsetTableAddress+OffsetTableLen, c.Position())
	assert.Equal(t, 0x1100, got.TrackDataAddress())
	assert.Equal(t, 0x1030, got.ObjectDataAddress())
	assert.Equal(t, 0x1000, got.ChecksumAddress())
}

func TestParseOffsetsTooShort(t *testing.T) {
	_, err := ParseOffsets(NewCursor(make([]byte, 100)))
	assert.ErrorIs(t, err, ErrUnexpectedEndOfData)

	_, err = ParseOffsets(NewCursor(make([]byte, OffsetTableAddress+OffsetTableLen-1)))
	assert.ErrorIs(t, err, ErrUnexpectedEndOfData)
}

func TestParseSectionHeader(t *testing.T) {
	data := []byte{
		0x00, 0x40, // angle
		0x0A, 0x00, // height
		0xE8, 0x03, // center x
		0x18, 0xFC, // center y
		0x05, 0x00, // center height
		0x90, 0x01, // start width
		0x01, 0x00, // pole side
		0x02,                               // pits side
		0x03,                               // surrounding area
		0x04,                               // right verge
		0x05,                               // left verge
		0x06,                               // kerb type
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, // kerb colors
		0xAA, // first byte of the section list
	}
	c := NewCursor(data)
	got, err := ParseSectionHeader(c)
	require.NoError(t, err)
	want := &model.TrackSectionHeader{
		Angle:                0x4000,
		Height:               10,
		TrackCenterX:         1000,
		TrackCenterY:         -1000,
		TrackCenterHeight:    5,
		StartWidth:           400,
		PoleSide:             1,
		PitsSide:             2,
		SurroundingArea:      3,
		RightVergeStartWidth: 4,
		LeftVergeStartWidth:  5,
		KerbType:             6,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSectionHeader() mismatch (-want +got):\n%v", diff)
	}
	assert.Equal(t, SectionHeaderLen+KerbColorDataLen, c.Position())
	next, err := c.PeekU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), next)
}

func TestParseSectionHeaderTruncated(t *testing.T) {
	c := NewCursor(make([]byte, SectionHeaderLen+KerbColorDataLen-1))
	_, err := ParseSectionHeader(c)
	assert.ErrorIs(t, err, ErrUnexpectedEndOfData)
	assert.Equal(t, 0, c.Position())
}
