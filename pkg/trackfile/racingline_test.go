//nolint:funlen // ok for tests
package trackfile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

func TestDecodeRacingLine(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want model.RacingLine
	}{
		{
			name: "single segment",
			data: []byte{
				0x10, 0x2C, 0x01, 0x05, 0x00, 0xE8, 0x03,
				0x00, 0x00,
			},
			want: model.RacingLine{
				Displacement: 300,
				Segments: []model.RacingLineSegment{
					{Length: 16, Correction: 5, Shape: model.NormalShape{Radius: 1000}},
				},
			},
		},
		{
			name: "normal and wide radius segments",
			data: []byte{
				// first segment
				0x20, 0x9C, 0xFF, 0x00, 0x00, 0x64, 0x00,
				// normal segment, type byte 0x00
				0x08, 0x00, 0x02, 0x00, 0x38, 0xFF,
				// wide radius segment
				0x0C, 0x40, 0xFE, 0xFF, 0x10, 0x27, 0xF0, 0xD8,
				// normal segment with a non marker type byte
				0x04, 0x41, 0x00, 0x00, 0x01, 0x00,
				// terminator
				0x00, 0x00,
			},
			want: model.RacingLine{
				Displacement: -100,
				Segments: []model.RacingLineSegment{
					{Length: 32, Correction: 0, Shape: model.NormalShape{Radius: 100}},
					{Length: 8, Correction: 2, Shape: model.NormalShape{Radius: -200}},
					{Length: 12, Correction: -2, Shape: model.WideRadiusShape{HighRadius: 10000, LowRadius: -10000}},
					{Length: 4, Correction: 0, Shape: model.NormalShape{Radius: 1}},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(append([]byte{}, tt.data...), 0xAB)
			c := NewCursor(data)
			got, err := DecodeRacingLine(c)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeRacingLine() mismatch (-want +got):\n%v", diff)
			}
			// terminator consumed, nothing beyond it
			assert.Equal(t, len(tt.data), c.Position())
		})
	}
}

func TestDecodeRacingLineErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"short first segment", []byte{0x10, 0x00, 0x00, 0x00}},
		{"missing terminator", []byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00}},
		{"short wide radius", []byte{
			0x10, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00,
			0x01, 0x40, 0x00, 0x00, 0x01, 0x00,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRacingLine(NewCursor(tt.data))
			assert.ErrorIs(t, err, ErrUnexpectedEndOfData)
		})
	}
}

func TestRacingLineEndsRewinds(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x00, 0x00, 0x00})
	done, err := racingLineEnds(c)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 0, c.Position())

	require.NoError(t, c.Seek(2))
	done, err = racingLineEnds(c)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 4, c.Position())
}
