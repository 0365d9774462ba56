package model

// ObjectShape is a placeholder for trackside object geometry.
// The object shape section is not decoded yet.
type ObjectShape struct {
	ScaleData []byte             `json:"scaleData"`
	Elements  []GraphicalElement `json:"elements"`
	Points    []Point3D          `json:"points"`
	Vectors   []Point3D          `json:"vectors"`
}

type Point3D struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
	Z int16 `json:"z"`
}

// GraphicalElement is one of Line, Bitmap, ExtendedBitmap or Polygon.
type GraphicalElement interface {
	isGraphicalElement()
}

// Line is encoded as [0xA0, flag, vectorRef]
type Line struct {
	Flag      uint8 `json:"flag"`
	VectorRef uint8 `json:"vectorRef"`
}

type BitmapKind uint8

const (
	BitmapA BitmapKind = 0x80
	BitmapB BitmapKind = 0x88
	BitmapC BitmapKind = 0xD0
)

// Bitmap is encoded as [kind, pointRef, flag, bitmapIndex]
type Bitmap struct {
	Kind        BitmapKind `json:"kind"`
	PointRef    uint8      `json:"pointRef"`
	Flag        uint8      `json:"flag"`
	BitmapIndex uint8      `json:"bitmapIndex"`
}

type ExtendedBitmapKind uint8

const (
	ExtendedBitmapA ExtendedBitmapKind = 0x82
	ExtendedBitmapB ExtendedBitmapKind = 0x86
)

// ExtendedBitmap is a Bitmap followed by two bytes of unknown purpose.
type ExtendedBitmap struct {
	Kind        ExtendedBitmapKind `json:"kind"`
	PointRef    uint8              `json:"pointRef"`
	Flag        uint8              `json:"flag"`
	BitmapIndex uint8              `json:"bitmapIndex"`
	Extra1      uint8              `json:"extra1"`
	Extra2      uint8              `json:"extra2"`
}

// Polygon has 3 to 12 sides. Positive side values reference a start
// point, negative values an end point.
type Polygon struct {
	Color uint8  `json:"color"`
	Sides []int8 `json:"sides"`
}

func (Line) isGraphicalElement()           {}
func (Bitmap) isGraphicalElement()         {}
func (ExtendedBitmap) isGraphicalElement() {}
func (Polygon) isGraphicalElement()        {}
