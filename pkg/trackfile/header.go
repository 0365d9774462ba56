package trackfile

import (
	"fmt"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

const (
	// OffsetTableAddress is where the offset table starts, right after the
	// horizon data block.
	OffsetTableAddress = 0x1000
	// OffsetTableLen is the size of the offset table (seven i16 values)
	OffsetTableLen = 14
	// SectionHeaderLen is the number of modeled section header bytes
	SectionHeaderLen = 19
	// KerbColorDataLen is the unmodeled kerb color data after the header
	KerbColorDataLen = 6
)

// ParseOffsets reads the offset table at OffsetTableAddress.
func ParseOffsets(c *Cursor) (*model.TrackOffsets, error) {
	if err := c.Seek(OffsetTableAddress); err != nil {
		return nil, fmt.Errorf("offset table: %w", err)
	}
	b, err := c.take(OffsetTableLen)
	if err != nil {
		return nil, fmt.Errorf("offset table: %w", err)
	}
	t := NewCursor(b)
	ret := &model.TrackOffsets{}
	for _, v := range []*int16{
		&ret.BaseOffset,
		&ret.Unknown2,
		&ret.Unknown3,
		&ret.Unknown4,
		&ret.ChecksumPosition,
		&ret.ObjectData,
		&ret.TrackData,
	} {
		*v, _ = t.ReadI16()
	}
	return ret, nil
}

// ParseSectionHeader reads the section header at the current position and
// skips the kerb color data following it, leaving the cursor at the start
// of the section list.
func ParseSectionHeader(c *Cursor) (*model.TrackSectionHeader, error) {
	start := c.Position()
	b, err := c.take(SectionHeaderLen + KerbColorDataLen)
	if err != nil {
		return nil, fmt.Errorf("section header at 0x%X: %w", start, err)
	}
	h := NewCursor(b[:SectionHeaderLen])
	ret := &model.TrackSectionHeader{}
	for _, v := range []*int16{
		&ret.Angle,
		&ret.Height,
		&ret.TrackCenterX,
		&ret.TrackCenterY,
		&ret.TrackCenterHeight,
		&ret.StartWidth,
		&ret.PoleSide,
	} {
		*v, _ = h.ReadI16()
	}
	for _, v := range []*uint8{
		&ret.PitsSide,
		&ret.SurroundingArea,
		&ret.RightVergeStartWidth,
		&ret.LeftVergeStartWidth,
		&ret.KerbType,
	} {
		*v, _ = h.ReadU8()
	}
	return ret, nil
}
