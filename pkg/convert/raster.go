package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
)

// RasterCodec turns a decoded YCbCr frame into an image of packed pixels with
// the same bounds. scratch may be used as intermediate storage; its content is
// undefined once Rasterize returns.
type RasterCodec interface {
	Rasterize(scratch *Scratch, src *image.YCbCr) (image.Image, error)
}

// RasterCodecFunc is a proxy type to make easier for users to implement RasterCodec
type RasterCodecFunc func(scratch *Scratch, src *image.YCbCr) (image.Image, error)

func (f RasterCodecFunc) Rasterize(scratch *Scratch, src *image.YCbCr) (image.Image, error) {
	return f(scratch, src)
}

// DirectCodec applies the BT.601 full range YCbCr to RGB matrix to every pixel.
type DirectCodec struct{}

func (DirectCodec) Rasterize(_ *Scratch, src *image.YCbCr) (image.Image, error) {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			yi := src.YOffset(x, y)
			ci := src.COffset(x, y)
			r, g, b := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
			dst.Pix[i+0] = r
			dst.Pix[i+1] = g
			dst.Pix[i+2] = b
			dst.Pix[i+3] = 0xff
			i += 4
		}
	}
	return dst, nil
}

// DefaultJPEGQuality is the quality used by JPEGRoundTripCodec when none is set.
const DefaultJPEGQuality = 90

// JPEGRoundTripCodec compresses the frame to JPEG and decodes it back. This
// matches the pixels produced by mobile platforms that only expose a YUV to
// JPEG path, at the cost of a lossy pass.
type JPEGRoundTripCodec struct {
	// Quality ranges from 1 to 100. Zero selects DefaultJPEGQuality.
	Quality int
}

func (c JPEGRoundTripCodec) quality() int {
	q := c.Quality
	if q == 0 {
		return DefaultJPEGQuality
	}
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

func (c JPEGRoundTripCodec) Rasterize(scratch *Scratch, src *image.YCbCr) (image.Image, error) {
	scratch.Reset()
	if err := jpeg.Encode(scratch, src, &jpeg.Options{Quality: c.quality()}); err != nil {
		return nil, newError("jpeg encode", ErrEncodeFailure, err)
	}

	img, err := jpeg.Decode(bytes.NewReader(scratch.Bytes()))
	if err != nil {
		return nil, newError("jpeg decode", ErrDecodeFailure, err)
	}
	if img.Bounds() != src.Bounds() {
		return nil, newError("jpeg decode", ErrDecodeFailure,
			fmt.Errorf("decoded bounds %v differ from %v", img.Bounds(), src.Bounds()))
	}
	return img, nil
}
