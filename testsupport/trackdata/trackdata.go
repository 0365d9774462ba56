// Package trackdata builds synthetic track files for tests.
package trackdata

import (
	"encoding/binary"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
)

const (
	// DefaultTrackDataAddress is where the section header starts
	DefaultTrackDataAddress = 0x1030
	// HeaderLen covers the modeled header and the kerb color data
	HeaderLen = trackfile.SectionHeaderLen + trackfile.KerbColorDataLen
)

type Command struct {
	ID uint8
	// Args[0] is stored as a single byte, further args as i16
	Args []int16
}

type Section struct {
	Length     uint8
	Curvature  int16
	Height     int16
	Flags      uint16
	RightVerge uint8
	LeftVerge  uint8
	// written in front of the section
	Commands []Command
}

// Builder assembles a track file: zeroed horizon data, the offset table at
// 0x1000, a section header at TrackDataAddress followed by the section list,
// the 0xFF 0xFF terminator and the checksum trailer.
type Builder struct {
	TrackDataAddress int
	// every header byte is set to this value
	HeaderFill byte
	Sections   []Section
	// commands between the last section and the terminator
	Trailing []Command
	// Checksum is written as trailer if set, otherwise the computed one
	Checksum *uint32
}

func NewBuilder() *Builder {
	return &Builder{
		TrackDataAddress: DefaultTrackDataAddress,
		HeaderFill:       0xFF,
	}
}

// WithPlainSections appends count sections of the given raw length with all
// other fields zero.
func (b *Builder) WithPlainSections(count int, length uint8) *Builder {
	for range count {
		b.Sections = append(b.Sections, Section{Length: length})
	}
	return b
}

func (b *Builder) WithChecksum(v uint32) *Builder {
	b.Checksum = &v
	return b
}

// SectionListAddress is the address of the first section record.
func (b *Builder) SectionListAddress() int {
	return b.TrackDataAddress + HeaderLen
}

// Bytes returns the assembled file.
func (b *Builder) Bytes() []byte {
	data := make([]byte, b.TrackDataAddress)
	relTrackData := int16(b.TrackDataAddress - model.OffsetBase)
	offsets := []int16{0x1010, 0, 0, 0, 0, 0x10, relTrackData}
	for i, v := range offsets {
		binary.LittleEndian.PutUint16(
			data[trackfile.OffsetTableAddress+2*i:], uint16(v))
	}
	for range HeaderLen {
		data = append(data, b.HeaderFill)
	}
	for _, s := range b.Sections {
		data = appendCommands(data, s.Commands)
		data = append(data, s.Length, 0)
		data = binary.LittleEndian.AppendUint16(data, uint16(s.Curvature))
		data = binary.LittleEndian.AppendUint16(data, uint16(s.Height))
		data = binary.LittleEndian.AppendUint16(data, s.Flags)
		data = append(data, s.RightVerge, s.LeftVerge)
	}
	data = appendCommands(data, b.Trailing)
	data = append(data, trackfile.SectionTerminator, trackfile.SectionTerminator)

	// checksum position points at the trailer
	binary.LittleEndian.PutUint16(
		data[trackfile.OffsetTableAddress+8:], uint16(int16(len(data)-model.OffsetBase)))

	data = append(data, 0, 0, 0, 0)
	checksum := trackfile.ComputeChecksum(data)
	if b.Checksum != nil {
		checksum = *b.Checksum
	}
	binary.LittleEndian.PutUint32(data[len(data)-trackfile.ChecksumLen:], checksum)
	return data
}

func appendCommands(data []byte, cmds []Command) []byte {
	for _, c := range cmds {
		var first int16
		if len(c.Args) > 0 {
			first = c.Args[0]
		}
		data = append(data, uint8(first), c.ID)
		for _, a := range c.Args[min(1, len(c.Args)):] {
			data = binary.LittleEndian.AppendUint16(data, uint16(a))
		}
	}
	return data
}

// Standard returns a file with 15 sections of 50 units (3652.5 m).
func Standard() []byte {
	return NewBuilder().WithPlainSections(15, 50).Bytes()
}

// Minimal returns 100 zero bytes followed by the checksum trailer.
// The offset table is not reachable.
func Minimal(checksum uint32) []byte {
	data := make([]byte, 100, 104)
	return binary.LittleEndian.AppendUint32(data, checksum)
}
