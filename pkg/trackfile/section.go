package trackfile

import (
	"fmt"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

// SectionTerminator is the lead byte pair value ending the section list.
const SectionTerminator = 0xFF

// SectionList is the result of decoding the section list.
type SectionList struct {
	Sections []model.TrackSection
	// commands between the last section and the terminator
	Trailing []model.TrackSectionCommand
}

// DecodeSectionList reads section and command records until the 0xFF 0xFF
// terminator. Commands are attached to the section following them.
func DecodeSectionList(c *Cursor) ([]model.TrackSection, error) {
	list, err := decodeSectionList(c)
	if err != nil {
		return nil, err
	}
	return list.Sections, nil
}

func decodeSectionList(c *Cursor) (*SectionList, error) {
	ret := &SectionList{Sections: make([]model.TrackSection, 0)}
	var pending []model.TrackSectionCommand
	for {
		start := c.Position()
		lead, err := c.take(2)
		if err != nil {
			return nil, err
		}
		b1, b2 := lead[0], lead[1]
		switch {
		case b1 == SectionTerminator && b2 == SectionTerminator:
			ret.Trailing = pending
			return ret, nil

		case b2 > 0:
			cmd, err := DecodeCommand(c, b2, b1)
			if err != nil {
				return nil, fmt.Errorf("command at 0x%X: %w", start, err)
			}
			pending = append(pending, cmd)

		default:
			section, err := decodeSection(c, b1)
			if err != nil {
				return nil, fmt.Errorf("section %d at 0x%X: %w", len(ret.Sections), start, err)
			}
			section.Commands = pending
			pending = nil
			ret.Sections = append(ret.Sections, section)
		}
	}
}

// decodeSection reads the section body following the (length, 0) lead-in.
func decodeSection(c *Cursor, rawLength uint8) (model.TrackSection, error) {
	b, err := c.take(8)
	if err != nil {
		return model.TrackSection{}, err
	}
	// body holds exactly 8 bytes, the reads below cannot fail
	body := NewCursor(b)
	curvature, _ := body.ReadI16()
	height, _ := body.ReadI16()
	flags, _ := body.ReadU16()
	right, _ := body.ReadU8()
	left, _ := body.ReadU8()
	return model.TrackSection{
		Length:          float64(rawLength) * model.UnitToMeters,
		Curvature:       curvature,
		Height:          height,
		Flags:           model.DecodeSectionFlags(flags),
		RightVergeWidth: right,
		LeftVergeWidth:  left,
	}, nil
}
