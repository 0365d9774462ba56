package trackfile

import (
	"fmt"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

const (
	// LineDiscriminator marks a Line element
	LineDiscriminator = 0xA0
	MinPolygonSides   = 3
	MaxPolygonSides   = 12
)

type elementKind int

const (
	kindPolygon elementKind = iota
	kindLine
	kindBitmap
	kindExtendedBitmap
)

// discriminator bytes not listed here start a polygon (the byte is its color)
var elementKinds = map[uint8]elementKind{
	LineDiscriminator:            kindLine,
	uint8(model.BitmapA):         kindBitmap,
	uint8(model.BitmapB):         kindBitmap,
	uint8(model.BitmapC):         kindBitmap,
	uint8(model.ExtendedBitmapA): kindExtendedBitmap,
	uint8(model.ExtendedBitmapB): kindExtendedBitmap,
}

var bitmapKinds = map[uint8]model.BitmapKind{
	0x80: model.BitmapA,
	0x88: model.BitmapB,
	0xD0: model.BitmapC,
}

var extendedBitmapKinds = map[uint8]model.ExtendedBitmapKind{
	0x82: model.ExtendedBitmapA,
	0x86: model.ExtendedBitmapB,
}

type elementDecoder func(c *Cursor, discriminator uint8) (model.GraphicalElement, error)

var elementDecoders = map[elementKind]elementDecoder{
	kindPolygon:        decodePolygon,
	kindLine:           decodeLine,
	kindBitmap:         decodeBitmap,
	kindExtendedBitmap: decodeExtendedBitmap,
}

func classifyElement(discriminator uint8) elementKind {
	if kind, ok := elementKinds[discriminator]; ok {
		return kind
	}
	return kindPolygon
}

// DecodeGraphicalElement decodes one element starting at its discriminator
// byte. On success the cursor is positioned right after the element.
func DecodeGraphicalElement(c *Cursor) (model.GraphicalElement, error) {
	start := c.Position()
	discriminator, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	el, err := elementDecoders[classifyElement(discriminator)](c, discriminator)
	if err != nil {
		return nil, fmt.Errorf("graphical element at 0x%X: %w", start, err)
	}
	return el, nil
}

func decodeLine(c *Cursor, _ uint8) (model.GraphicalElement, error) {
	b, err := c.take(2)
	if err != nil {
		return nil, err
	}
	return model.Line{Flag: b[0], VectorRef: b[1]}, nil
}

func decodeBitmap(c *Cursor, discriminator uint8) (model.GraphicalElement, error) {
	kind, ok := bitmapKinds[discriminator]
	if !ok {
		return nil, fmt.Errorf("bitmap flag 0x%02X: %w", discriminator, ErrInvalidDiscriminator)
	}
	b, err := c.take(3)
	if err != nil {
		return nil, err
	}
	return model.Bitmap{
		Kind:        kind,
		PointRef:    b[0],
		Flag:        b[1],
		BitmapIndex: b[2],
	}, nil
}

func decodeExtendedBitmap(c *Cursor, discriminator uint8) (model.GraphicalElement, error) {
	kind, ok := extendedBitmapKinds[discriminator]
	if !ok {
		return nil, fmt.Errorf("extended bitmap flag 0x%02X: %w", discriminator, ErrInvalidDiscriminator)
	}
	b, err := c.take(5)
	if err != nil {
		return nil, err
	}
	return model.ExtendedBitmap{
		Kind:        kind,
		PointRef:    b[0],
		Flag:        b[1],
		BitmapIndex: b[2],
		Extra1:      b[3],
		Extra2:      b[4],
	}, nil
}

// decodePolygon reads side references until a zero byte.
func decodePolygon(c *Cursor, color uint8) (model.GraphicalElement, error) {
	sides := make([]int8, 0, MaxPolygonSides)
	for {
		side, err := c.ReadI8()
		if err != nil {
			return nil, err
		}
		if side == 0 {
			break
		}
		sides = append(sides, side)
		if len(sides) > MaxPolygonSides {
			return nil, fmt.Errorf("%d sides: %w", len(sides), ErrPolygonTooManySides)
		}
	}
	if len(sides) < MinPolygonSides {
		return nil, fmt.Errorf("%d sides: %w", len(sides), ErrPolygonTooFewSides)
	}
	return model.Polygon{Color: color, Sides: sides}, nil
}
