package model

// DbTrack is a decoded track file stored in the track catalog
type DbTrack struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Checksum uint32       `json:"checksum"`
	Data     TrackSummary `json:"data"`
}

// TrackSummary holds the key figures of a decoded track file
type TrackSummary struct {
	Name               string  `json:"name"`
	File               string  `json:"file,omitempty"`
	Checksum           uint32  `json:"checksum"`
	ComputedChecksum   uint32  `json:"computedChecksum"`
	Length             float64 `json:"length"`
	SectionCount       int     `json:"sectionCount"`
	CommandCount       int     `json:"commandCount"`
	SectionSkip        int     `json:"sectionSkip"`
	TrackDataAddress   int     `json:"trackDataAddress"`
	LeftKerbs          int     `json:"leftKerbs"`
	RightKerbs         int     `json:"rightKerbs"`
	PitEntrances       int     `json:"pitEntrances"`
	PitExits           int     `json:"pitExits"`
	RacingLineSegments int     `json:"racingLineSegments"`
	ContentHash        string  `json:"sha256,omitempty"`
}
