package trackfile

import (
	"fmt"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

// WideRadiusMarker is the segment type byte selecting a wide radius segment
const WideRadiusMarker = 0x40

// DecodeRacingLine reads the racing line segments up to the zero i16
// terminator. The segment list has no length prefix, so after each segment
// the next i16 is read as a tentative terminator and the cursor is rewound
// if it is not zero.
func DecodeRacingLine(c *Cursor) (model.RacingLine, error) {
	start := c.Position()
	ret := model.RacingLine{}
	first, displacement, err := decodeFirstSegment(c)
	if err != nil {
		return ret, fmt.Errorf("racing line at 0x%X: %w", start, err)
	}
	ret.Displacement = displacement
	ret.Segments = append(ret.Segments, first)
	for {
		done, err := racingLineEnds(c)
		if err != nil {
			return ret, fmt.Errorf("racing line segment %d: %w", len(ret.Segments), err)
		}
		if done {
			return ret, nil
		}
		segStart := c.Position()
		seg, err := decodeSegment(c)
		if err != nil {
			return ret, fmt.Errorf("racing line segment %d at 0x%X: %w", len(ret.Segments), segStart, err)
		}
		ret.Segments = append(ret.Segments, seg)
	}
}

// decodeFirstSegment reads length, displacement, correction and radius.
// The first segment has no type byte and is always a normal one.
func decodeFirstSegment(c *Cursor) (seg model.RacingLineSegment, displacement int16, err error) {
	if seg.Length, err = c.ReadU8(); err != nil {
		return seg, 0, err
	}
	if displacement, err = c.ReadI16(); err != nil {
		return seg, 0, err
	}
	if seg.Correction, err = c.ReadI16(); err != nil {
		return seg, 0, err
	}
	radius, err := c.ReadI16()
	if err != nil {
		return seg, 0, err
	}
	seg.Shape = model.NormalShape{Radius: radius}
	return seg, displacement, nil
}

func decodeSegment(c *Cursor) (seg model.RacingLineSegment, err error) {
	if seg.Length, err = c.ReadU8(); err != nil {
		return seg, err
	}
	typeByte, err := c.ReadU8()
	if err != nil {
		return seg, err
	}
	if seg.Correction, err = c.ReadI16(); err != nil {
		return seg, err
	}
	if typeByte == WideRadiusMarker {
		var shape model.WideRadiusShape
		if shape.HighRadius, err = c.ReadI16(); err != nil {
			return seg, err
		}
		if shape.LowRadius, err = c.ReadI16(); err != nil {
			return seg, err
		}
		seg.Shape = shape
		return seg, nil
	}
	radius, err := c.ReadI16()
	if err != nil {
		return seg, err
	}
	seg.Shape = model.NormalShape{Radius: radius}
	return seg, nil
}

// racingLineEnds consumes a zero i16 terminator. Any other value is left
// unread.
func racingLineEnds(c *Cursor) (bool, error) {
	pos := c.Position()
	v, err := c.ReadI16()
	if err != nil {
		return false, err
	}
	if v == 0 {
		return true, nil
	}
	return false, c.Seek(pos)
}
