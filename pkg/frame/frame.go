package frame

import (
	"fmt"
	"image"
	"math"
)

// Decoder turns an interleaved semi-planar buffer into a 4:2:0 YCbCr image.
type Decoder interface {
	Decode(buf []byte, l Layout) (*image.YCbCr, error)
}

// decoderFunc is a proxy type for Decoder
type decoderFunc func(buf []byte, l Layout) (*image.YCbCr, error)

func (f decoderFunc) Decode(buf []byte, l Layout) (*image.YCbCr, error) {
	return f(buf, l)
}

// PlanarImage describes a camera frame as handed over by the frame producer.
// Planes[0] holds luma samples and Planes[1] the interleaved chroma samples.
// The planes are only read; the producer keeps ownership.
type PlanarImage struct {
	Width, Height int
	Planes        [][]byte
	Format        Format

	// YStride and CStride are the row strides of the luma and chroma planes.
	// Zero means rows are tightly packed.
	YStride, CStride int
}

// Layout describes where the planes of a PlanarImage live once they are
// concatenated by Interleave.
type Layout struct {
	Width, Height    int
	YStride, CStride int
	// YLen is the length of the luma plane, which is also the offset of the
	// chroma plane inside the interleaved buffer.
	YLen int
}

func (l Layout) chromaWidth() int  { return l.Width/2 + l.Width%2 }
func (l Layout) chromaHeight() int { return l.Height/2 + l.Height%2 }

// validate checks the dimensions and strides of l, and that lumaSize and
// chromaSize fit in an int.
func (l Layout) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, l.Width, l.Height)
	}

	cw := l.chromaWidth()
	if cw > math.MaxInt/2 {
		return fmt.Errorf("%w: width (%d) too large", ErrInvalidDimensions, l.Width)
	}
	if l.YStride < l.Width {
		return fmt.Errorf("%w: luma stride (%d) less than width (%d)", ErrInvalidDimensions, l.YStride, l.Width)
	}
	if l.CStride < 2*cw {
		return fmt.Errorf("%w: chroma stride (%d) less than expected (%d)", ErrInvalidDimensions, l.CStride, 2*cw)
	}

	if l.Height-1 > (math.MaxInt-l.Width)/l.YStride {
		return fmt.Errorf("%w: luma plane of %dx%d with stride %d overflows", ErrInvalidDimensions, l.Width, l.Height, l.YStride)
	}
	if l.chromaHeight()-1 > (math.MaxInt-2*cw)/l.CStride {
		return fmt.Errorf("%w: chroma plane of %dx%d with stride %d overflows", ErrInvalidDimensions, l.Width, l.Height, l.CStride)
	}
	return nil
}

// lumaSize is the minimum luma plane length covering every visible sample.
// l must pass validate.
func (l Layout) lumaSize() int {
	return l.YStride*(l.Height-1) + l.Width
}

// chromaSize is the minimum chroma plane length covering every visible sample.
// l must pass validate.
func (l Layout) chromaSize() int {
	return l.CStride*(l.chromaHeight()-1) + 2*l.chromaWidth()
}

func (img PlanarImage) format() Format {
	if img.Format == "" {
		return DefaultFormat
	}
	return img.Format
}

// Layout resolves the strides of img. It does not validate anything.
func (img PlanarImage) Layout() Layout {
	l := Layout{
		Width:   img.Width,
		Height:  img.Height,
		YStride: img.YStride,
		CStride: img.CStride,
	}
	if l.YStride == 0 {
		l.YStride = l.Width
	}
	if l.CStride == 0 {
		l.CStride = 2 * l.chromaWidth()
	}
	if len(img.Planes) > 0 {
		l.YLen = len(img.Planes[0])
	}
	return l
}

// Validate checks the dimensions and plane sizes of img.
func (img PlanarImage) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}

	switch f := img.format(); f {
	case FormatNV21, FormatNV12:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	if len(img.Planes) < 2 {
		return fmt.Errorf("%w: expected 2 planes, got %d", ErrInsufficientPlaneData, len(img.Planes))
	}

	l := img.Layout()
	if err := l.validate(); err != nil {
		return err
	}

	if n, need := len(img.Planes[0]), l.lumaSize(); n < need {
		return fmt.Errorf("%w: luma plane length (%d) less than expected (%d)", ErrInsufficientPlaneData, n, need)
	}
	if n, need := len(img.Planes[1]), l.chromaSize(); n < need {
		return fmt.Errorf("%w: chroma plane length (%d) less than expected (%d)", ErrInsufficientPlaneData, n, need)
	}
	return nil
}
