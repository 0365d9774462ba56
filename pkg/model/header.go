package model

// TrackOffsets is the offset table found at 0x1000.
// ChecksumPosition, ObjectData and TrackData are relative to
// OffsetBase and need adjustment before use as file addresses.
type TrackOffsets struct {
	BaseOffset       int16 `json:"baseOffset"`
	Unknown2         int16 `json:"unknown2"`
	Unknown3         int16 `json:"unknown3"`
	Unknown4         int16 `json:"unknown4"`
	ChecksumPosition int16 `json:"checksumPosition"`
	ObjectData       int16 `json:"objectData"`
	TrackData        int16 `json:"trackData"`
}

// OffsetBase is added to the relative entries of the offset table.
const OffsetBase = 0x1010

func (o *TrackOffsets) ChecksumAddress() int   { return int(o.ChecksumPosition) + OffsetBase }
func (o *TrackOffsets) ObjectDataAddress() int { return int(o.ObjectData) + OffsetBase }
func (o *TrackOffsets) TrackDataAddress() int  { return int(o.TrackData) + OffsetBase }

// TrackSectionHeader precedes the section list.
// 19 bytes are modeled, 6 bytes of kerb color data follow.
type TrackSectionHeader struct {
	Angle                int16 `json:"angle"`
	Height               int16 `json:"height"`
	TrackCenterX         int16 `json:"trackCenterX"`
	TrackCenterY         int16 `json:"trackCenterY"`
	TrackCenterHeight    int16 `json:"trackCenterHeight"`
	StartWidth           int16 `json:"startWidth"`
	PoleSide             int16 `json:"poleSide"`
	PitsSide             uint8 `json:"pitsSide"`
	SurroundingArea      uint8 `json:"surroundingArea"`
	RightVergeStartWidth uint8 `json:"rightVergeStartWidth"`
	LeftVergeStartWidth  uint8 `json:"leftVergeStartWidth"`
	KerbType             uint8 `json:"kerbType"`
}
