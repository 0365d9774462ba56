package trackfile

import (
	"errors"
	"fmt"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

// MinFileSize is the smallest buffer accepted by the decoder: the checksum
// trailer. Smaller files without a reachable offset table decode to a track
// without sections.
const MinFileSize = ChecksumLen

type Option func(*Decoder)

// Decoder turns track file contents into a model.Track.
// A Decoder holds no state between calls and may be shared by goroutines.
type Decoder struct {
	logger     *log.Logger
	parallel   bool
	minLength  float64
	maxLength  float64
	candidates []int
}

func NewDecoder(opts ...Option) *Decoder {
	ret := &Decoder{
		minLength:  DefaultMinTrackLength,
		maxLength:  DefaultMaxTrackLength,
		candidates: DefaultCandidates,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = log.Default().Named("trackfile")
	}
	return ret
}

func WithLogger(l *log.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// WithParallelSearch evaluates the skip candidates concurrently.
// The result is the same as with the sequential search.
func WithParallelSearch(parallel bool) Option {
	return func(d *Decoder) {
		d.parallel = parallel
	}
}

// WithLengthRange sets the plausible track length range in meters
func WithLengthRange(minLength, maxLength float64) Option {
	return func(d *Decoder) {
		d.minLength = minLength
		d.maxLength = maxLength
	}
}

// WithCandidates replaces the skip distances tried by the section search.
func WithCandidates(skips []int) Option {
	return func(d *Decoder) {
		d.candidates = skips
	}
}

// Asset is the decoded track together with the values found on the way.
type Asset struct {
	Track *model.Track
	// nil if the file is too short to hold the offset table
	Offsets *model.TrackOffsets
	// nil if no header could be read at TrackDataAddress
	Header           *model.TrackSectionHeader
	TrackDataAddress int
	// skip distance of the accepted section list, -1 if none was accepted
	SectionSkip      int
	CandidatesTried  int
	Checksum         uint32
	ComputedChecksum uint32
	// commands found between the last section and the terminator
	TrailingCommands []model.TrackSectionCommand
}

// SectionListAddress returns the address of the first section record, -1 if
// no section list was accepted.
func (a *Asset) SectionListAddress() int {
	if a.SectionSkip < 0 {
		return -1
	}
	return a.TrackDataAddress + a.SectionSkip
}

// ChecksumMatches reports whether stored and computed checksum are equal.
func (a *Asset) ChecksumMatches() bool {
	return a.Checksum == a.ComputedChecksum
}

// DecodeTrack decodes data with a default Decoder.
func DecodeTrack(data []byte, name string) (*model.Track, error) {
	return NewDecoder().Decode(data, name)
}

func (d *Decoder) Decode(data []byte, name string) (*model.Track, error) {
	asset, err := d.Inspect(data, name)
	if err != nil {
		return nil, err
	}
	return asset.Track, nil
}

// Inspect decodes data and reports the intermediate results.
func (d *Decoder) Inspect(data []byte, name string) (*Asset, error) {
	if len(data) < MinFileSize {
		return nil, fmt.Errorf("%d bytes, need at least %d: %w",
			len(data), MinFileSize, ErrFileTooSmall)
	}
	checksum, err := StoredChecksum(data)
	if err != nil {
		return nil, err
	}
	ret := &Asset{
		Track:            newTrack(name, checksum),
		SectionSkip:      -1,
		Checksum:         checksum,
		ComputedChecksum: ComputeChecksum(data),
	}
	logger := d.logger.With(log.String("track", name))

	c := NewCursor(data)
	offsets, err := ParseOffsets(c)
	if err != nil {
		if !errors.Is(err, ErrUnexpectedEndOfData) {
			return nil, err
		}
		logger.Debug("offset table not reachable", log.Int("size", len(data)))
		return ret, nil
	}
	ret.Offsets = offsets
	ret.TrackDataAddress = offsets.TrackDataAddress()

	if err := c.Seek(ret.TrackDataAddress); err == nil {
		if header, err := ParseSectionHeader(c); err == nil {
			ret.Header = header
		}
	}

	result := d.search(data, ret.TrackDataAddress)
	ret.CandidatesTried = result.tried
	if result.best == nil {
		logger.Debug("no section list accepted",
			log.Int("trackDataAddress", ret.TrackDataAddress),
			log.Int("candidates", result.tried))
		return ret, nil
	}
	ret.SectionSkip = result.best.skip
	ret.TrailingCommands = result.best.list.Trailing
	ret.Track.Sections = result.best.list.Sections
	ret.Track.Length = result.best.length
	logger.Debug("section list accepted",
		log.Int("skip", ret.SectionSkip),
		log.Int("sections", len(ret.Track.Sections)),
		log.Float64("length", ret.Track.Length))
	return ret, nil
}

// newTrack returns a track without sections. Racing line, object shapes,
// pit lane and cameras are not located by the decoder yet.
func newTrack(name string, checksum uint32) *model.Track {
	return &model.Track{
		Name:         name,
		Sections:     []model.TrackSection{},
		RacingLine:   model.RacingLine{Segments: []model.RacingLineSegment{}},
		Checksum:     checksum,
		ObjectShapes: []model.ObjectShape{},
		PitLane:      []model.TrackSection{},
		Cameras:      []model.Camera{},
	}
}
