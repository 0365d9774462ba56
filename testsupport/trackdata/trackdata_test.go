package trackdata

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
)

func TestBuilderLayout(t *testing.T) {
	data := Standard()
	// header, 15 sections, terminator, trailer
	assert.Len(t, data, DefaultTrackDataAddress+HeaderLen+15*10+2+4)

	off := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(data[trackfile.OffsetTableAddress+2*i:]))
	}
	assert.Equal(t, int16(DefaultTrackDataAddress-model.OffsetBase), off(6))
	assert.Equal(t, len(data)-4, int(off(4))+model.OffsetBase)

	first := NewBuilder().SectionListAddress()
	assert.Equal(t, 0x1049, first)
	assert.Equal(t, []byte{50, 0}, data[first:first+2])
	assert.Equal(t, []byte{0xFF, 0xFF}, data[len(data)-6:len(data)-4])
}

func TestBuilderChecksum(t *testing.T) {
	data := Standard()
	stored, err := trackfile.StoredChecksum(data)
	require.NoError(t, err)
	assert.Equal(t, trackfile.ComputeChecksum(data), stored)

	fixed := NewBuilder().WithPlainSections(2, 10).WithChecksum(0xDDCCBBAA).Bytes()
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, fixed[len(fixed)-4:])
}

func TestBuilderCommands(t *testing.T) {
	b := NewBuilder()
	b.Sections = []Section{{
		Length:   20,
		Commands: []Command{{ID: 0x96, Args: []int16{7}}},
	}}
	b.Trailing = []Command{{ID: 0x80, Args: []int16{1, -2}}}
	data := b.Bytes()

	pos := b.SectionListAddress()
	assert.Equal(t, []byte{7, 0x96}, data[pos:pos+2])
	pos += 2 + 10
	assert.Equal(t, []byte{1, 0x80, 0xFE, 0xFF}, data[pos:pos+4])
}

func TestMinimal(t *testing.T) {
	data := Minimal(0xDDCCBBAA)
	assert.Len(t, data, 104)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, data[100:])
}
