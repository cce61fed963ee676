package frame

import (
	"fmt"
	"image"
)

// decodeNV21 decodes a buffer whose chroma plane is interleaved V, U.
func decodeNV21(buf []byte, l Layout) (*image.YCbCr, error) {
	return decodeSemiPlanar(buf, l, 1, 0)
}

// decodeNV12 decodes a buffer whose chroma plane is interleaved U, V.
func decodeNV12(buf []byte, l Layout) (*image.YCbCr, error) {
	return decodeSemiPlanar(buf, l, 0, 1)
}

func decodeSemiPlanar(buf []byte, l Layout, cbOffset, crOffset int) (*image.YCbCr, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if l.YLen < l.lumaSize() {
		return nil, fmt.Errorf("%w: luma length (%d) less than expected (%d)", ErrInsufficientPlaneData, l.YLen, l.lumaSize())
	}

	ci := l.YLen + l.chromaSize()
	if ci > len(buf) {
		return nil, fmt.Errorf("%w: frame length (%d) less than expected (%d)", ErrInsufficientPlaneData, len(buf), ci)
	}

	cw, ch := l.chromaWidth(), l.chromaHeight()
	cb := make([]byte, cw*ch)
	cr := make([]byte, cw*ch)

	uv := buf[l.YLen:]
	for y := 0; y < ch; y++ {
		row := uv[y*l.CStride:]
		for x := 0; x < cw; x++ {
			cb[y*cw+x] = row[2*x+cbOffset]
			cr[y*cw+x] = row[2*x+crOffset]
		}
	}

	return &image.YCbCr{
		Y:              buf[:l.YLen:l.YLen],
		YStride:        l.YStride,
		Cb:             cb,
		Cr:             cr,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, l.Width, l.Height),
	}, nil
}
