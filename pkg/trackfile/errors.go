package trackfile

import "errors"

var (
	ErrUnexpectedEndOfData  = errors.New("unexpected end of data")
	ErrInvalidSeek          = errors.New("seek to negative position")
	ErrInvalidDiscriminator = errors.New("invalid discriminator byte")
	ErrPolygonTooFewSides   = errors.New("polygon has too few sides")
	ErrPolygonTooManySides  = errors.New("polygon has too many sides")
	ErrFileTooSmall         = errors.New("file too small to be a valid track file")
)
