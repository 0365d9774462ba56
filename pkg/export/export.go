// Package export renders decoded track files as JSON documents.
package export

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
)

// FileSuffix is appended to the track name for export files
const FileSuffix = ".racing.json"

type (
	Document struct {
		Name               string                    `json:"name"`
		File               string                    `json:"file,omitempty"`
		Checksum           ChecksumInfo              `json:"checksum"`
		Offsets            *model.TrackOffsets       `json:"offsets"`
		Header             *model.TrackSectionHeader `json:"header"`
		TrackDataAddress   int                       `json:"trackDataAddress"`
		SectionSkip        int                       `json:"sectionSkip"`
		SectionListAddress int                       `json:"sectionListAddress"`
		CandidatesTried    int                       `json:"candidatesTried"`
		Length             float64                   `json:"length"`
		Sections           []Section                 `json:"sections"`
		TrailingCommands   []Command                 `json:"trailingCommands"`
		RacingLine         RacingLine                `json:"racingLine"`
	}
	ChecksumInfo struct {
		Stored   string `json:"stored"`
		Computed string `json:"computed"`
		Matches  bool   `json:"matches"`
	}
	Section struct {
		Index           int       `json:"index"`
		Length          float64   `json:"length"`
		Curvature       int16     `json:"curvature"`
		Height          int16     `json:"height"`
		Flags           uint16    `json:"flags"`
		LeftKerb        bool      `json:"leftKerb"`
		RightKerb       bool      `json:"rightKerb"`
		KerbHeight      string    `json:"kerbHeight"`
		PitLaneEntrance bool      `json:"pitLaneEntrance"`
		PitLaneExit     bool      `json:"pitLaneExit"`
		RightVergeWidth uint8     `json:"rightVergeWidth"`
		LeftVergeWidth  uint8     `json:"leftVergeWidth"`
		Commands        []Command `json:"commands"`
	}
	Command struct {
		ID   string  `json:"id"`
		Args []int16 `json:"args"`
	}
	RacingLine struct {
		Displacement int16     `json:"displacement"`
		Segments     []Segment `json:"segments"`
	}
	Segment struct {
		Kind       string `json:"kind"`
		Length     uint8  `json:"length"`
		Correction int16  `json:"correction"`
		Radius     int16  `json:"radius"`
		HighRadius int16  `json:"highRadius"`
		LowRadius  int16  `json:"lowRadius"`
	}
)

func hex32(v uint32) string { return fmt.Sprintf("0x%08X", v) }

// NewDocument builds the export document for a decoded asset.
func NewDocument(asset *trackfile.Asset, file string) *Document {
	track := asset.Track
	return &Document{
		Name: track.Name,
		File: file,
		Checksum: ChecksumInfo{
			Stored:   hex32(asset.Checksum),
			Computed: hex32(asset.ComputedChecksum),
			Matches:  asset.ChecksumMatches(),
		},
		Offsets:            asset.Offsets,
		Header:             asset.Header,
		TrackDataAddress:   asset.TrackDataAddress,
		SectionSkip:        asset.SectionSkip,
		SectionListAddress: asset.SectionListAddress(),
		CandidatesTried:    asset.CandidatesTried,
		Length:             track.Length,
		Sections: lo.Map(track.Sections, func(s model.TrackSection, i int) Section {
			return newSection(i, &s)
		}),
		TrailingCommands: newCommands(asset.TrailingCommands),
		RacingLine:       NewRacingLine(&track.RacingLine),
	}
}

func newSection(idx int, s *model.TrackSection) Section {
	return Section{
		Index:           idx,
		Length:          s.Length,
		Curvature:       s.Curvature,
		Height:          s.Height,
		Flags:           s.Flags.Raw,
		LeftKerb:        s.Flags.HasLeftKerb,
		RightKerb:       s.Flags.HasRightKerb,
		KerbHeight:      s.Flags.KerbHeight.String(),
		PitLaneEntrance: s.Flags.PitLaneEntrance,
		PitLaneExit:     s.Flags.PitLaneExit,
		RightVergeWidth: s.RightVergeWidth,
		LeftVergeWidth:  s.LeftVergeWidth,
		Commands:        newCommands(s.Commands),
	}
}

func newCommands(cmds []model.TrackSectionCommand) []Command {
	return lo.Map(cmds, func(c model.TrackSectionCommand, _ int) Command {
		return Command{ID: fmt.Sprintf("0x%02X", c.CommandID), Args: c.Args}
	})
}

// NewRacingLine converts a decoded racing line, segment shapes are flattened
// into the kind field and the radius values.
func NewRacingLine(rl *model.RacingLine) RacingLine {
	return RacingLine{
		Displacement: rl.Displacement,
		Segments: lo.Map(rl.Segments, func(s model.RacingLineSegment, _ int) Segment {
			ret := Segment{Length: s.Length, Correction: s.Correction}
			switch shape := s.Shape.(type) {
			case model.NormalShape:
				ret.Kind = shape.Kind()
				ret.Radius = shape.Radius
			case model.WideRadiusShape:
				ret.Kind = shape.Kind()
				ret.HighRadius = shape.HighRadius
				ret.LowRadius = shape.LowRadius
			}
			return ret
		}),
	}
}

// Render returns the JSON representation of v, indented if pretty is set.
func Render(v any, pretty bool) ([]byte, error) {
	if pretty {
		return oj.Marshal(v, 2)
	}
	return oj.Marshal(v)
}

// FileName returns the export file name for a track
func FileName(name string) string {
	return name + FileSuffix
}
