package model

// UnitToMeters converts the raw section length unit into meters.
const UnitToMeters = 4.87

// Track is the decoded representation of a circuit file.
// It is built once by the decoder and holds no references into the
// source buffer.
type Track struct {
	Name         string         `json:"name"`
	Length       float64        `json:"length"` // meters, sum of section lengths
	Sections     []TrackSection `json:"sections"`
	RacingLine   RacingLine     `json:"racingLine"`
	Checksum     uint32         `json:"checksum"`
	ObjectShapes []ObjectShape  `json:"objectShapes"`
	PitLane      []TrackSection `json:"pitLane"`
	Cameras      []Camera       `json:"cameras"`
}

type TrackSection struct {
	Length          float64               `json:"length"` // meters
	Curvature       int16                 `json:"curvature"`
	Height          int16                 `json:"height"`
	Flags           SectionFlags          `json:"flags"`
	RightVergeWidth uint8                 `json:"rightVergeWidth"`
	LeftVergeWidth  uint8                 `json:"leftVergeWidth"`
	Commands        []TrackSectionCommand `json:"commands"`
}

type KerbHeight int

const (
	KerbLow KerbHeight = iota
	KerbHigh
)

func (k KerbHeight) String() string {
	if k == KerbHigh {
		return "high"
	}
	return "low"
}

// SectionFlags is the decoded form of the 16 bit section flags word.
// The bit assignment is provisional and has not been confirmed against
// captured game data.
type SectionFlags struct {
	Raw             uint16     `json:"raw"`
	HasLeftKerb     bool       `json:"hasLeftKerb"`
	HasRightKerb    bool       `json:"hasRightKerb"`
	KerbHeight      KerbHeight `json:"kerbHeight"`
	PitLaneEntrance bool       `json:"pitLaneEntrance"`
	PitLaneExit     bool       `json:"pitLaneExit"`
	RoadSigns       bool       `json:"roadSigns"`
	RoadSignArrow   bool       `json:"roadSignArrow"`
}

const (
	FlagLeftKerb uint16 = 1 << iota
	FlagRightKerb
	FlagKerbHigh
	FlagPitLaneEntrance
	FlagPitLaneExit
	FlagRoadSigns
	FlagRoadSignArrow
)

func DecodeSectionFlags(raw uint16) SectionFlags {
	f := SectionFlags{
		Raw:             raw,
		HasLeftKerb:     raw&FlagLeftKerb != 0,
		HasRightKerb:    raw&FlagRightKerb != 0,
		KerbHeight:      KerbLow,
		PitLaneEntrance: raw&FlagPitLaneEntrance != 0,
		PitLaneExit:     raw&FlagPitLaneExit != 0,
		RoadSigns:       raw&FlagRoadSigns != 0,
		RoadSignArrow:   raw&FlagRoadSignArrow != 0,
	}
	if raw&FlagKerbHigh != 0 {
		f.KerbHeight = KerbHigh
	}
	return f
}

// TrackSectionCommand is an auxiliary directive attached to the section
// following it in the file. Args[0] is the lead byte of the command header.
type TrackSectionCommand struct {
	CommandID uint8   `json:"commandId"`
	Args      []int16 `json:"args"`
}

type RacingLine struct {
	Displacement int16               `json:"displacement"`
	Segments     []RacingLineSegment `json:"segments"`
}

type RacingLineSegment struct {
	Length     uint8        `json:"length"`
	Correction int16        `json:"correction"`
	Shape      SegmentShape `json:"shape"`
}

// SegmentShape is either NormalShape or WideRadiusShape.
type SegmentShape interface {
	isSegmentShape()
	Kind() string
}

type NormalShape struct {
	Radius int16 `json:"radius"`
}

type WideRadiusShape struct {
	HighRadius int16 `json:"highRadius"`
	LowRadius  int16 `json:"lowRadius"`
}

func (NormalShape) isSegmentShape()     {}
func (WideRadiusShape) isSegmentShape() {}
func (NormalShape) Kind() string        { return "normal" }
func (WideRadiusShape) Kind() string    { return "wideRadius" }

type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Camera is a placeholder, camera data is not decoded yet.
type Camera struct {
	Position Vec3    `json:"position"`
	Target   Vec3    `json:"target"`
	FOV      float32 `json:"fov"`
}
