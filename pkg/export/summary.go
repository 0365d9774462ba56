package export

import (
	"github.com/samber/lo"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
)

// Summarize collects the key figures of a decoded asset
func Summarize(asset *trackfile.Asset, file string) model.TrackSummary {
	sections := asset.Track.Sections
	return model.TrackSummary{
		Name:             asset.Track.Name,
		File:             file,
		Checksum:         asset.Checksum,
		ComputedChecksum: asset.ComputedChecksum,
		Length:           asset.Track.Length,
		SectionCount:     len(sections),
		CommandCount: lo.SumBy(sections, func(s model.TrackSection) int {
			return len(s.Commands)
		}) + len(asset.TrailingCommands),
		SectionSkip:      asset.SectionSkip,
		TrackDataAddress: asset.TrackDataAddress,
		LeftKerbs: lo.CountBy(sections, func(s model.TrackSection) bool {
			return s.Flags.HasLeftKerb
		}),
		RightKerbs: lo.CountBy(sections, func(s model.TrackSection) bool {
			return s.Flags.HasRightKerb
		}),
		PitEntrances: lo.CountBy(sections, func(s model.TrackSection) bool {
			return s.Flags.PitLaneEntrance
		}),
		PitExits: lo.CountBy(sections, func(s model.TrackSection) bool {
			return s.Flags.PitLaneExit
		}),
		RacingLineSegments: len(asset.Track.RacingLine.Segments),
	}
}
