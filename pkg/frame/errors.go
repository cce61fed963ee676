package frame

import "errors"

var (
	ErrInvalidDimensions     = errors.New("invalid dimensions")
	ErrInsufficientPlaneData = errors.New("insufficient plane data")
	ErrUnsupportedFormat     = errors.New("unsupported format")
)
