package frame

import (
	"fmt"
)

// NewDecoder returns the Decoder for f. An empty format selects DefaultFormat.
func NewDecoder(f Format) (Decoder, error) {
	var decoder decoderFunc

	switch f {
	case FormatNV21, "":
		decoder = decodeNV21
	case FormatNV12:
		decoder = decodeNV12
	default:
		return nil, fmt.Errorf("%w: %s is not supported", ErrUnsupportedFormat, f)
	}

	return decoder, nil
}
