package basedata

import (
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

func SampleSummary() model.TrackSummary {
	return model.TrackSummary{
		Name:               "F1CT01",
		File:               "F1CT01.DAT",
		Checksum:           0xDDCCBBAA,
		ComputedChecksum:   0xDDCCBBAA,
		Length:             3652.5,
		SectionCount:       15,
		CommandCount:       2,
		SectionSkip:        25,
		TrackDataAddress:   0x1030,
		LeftKerbs:          3,
		RightKerbs:         2,
		PitEntrances:       1,
		PitExits:           1,
		RacingLineSegments: 0,
	}
}

func SampleDbTrack() *model.DbTrack {
	s := SampleSummary()
	return &model.DbTrack{
		Name:     s.Name,
		Checksum: s.Checksum,
		Data:     s,
	}
}
