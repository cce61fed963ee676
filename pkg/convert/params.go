package convert

import (
	"image/png"

	"github.com/visioncamera/faceframe/pkg/frame"
	"golang.org/x/image/draw"
)

// Params stores the conversion parameters of a Converter.
type Params struct {
	// Codec turns the decoded YCbCr frame into packed pixels.
	Codec RasterCodec
	// Depth is the color depth of the encoded PNG.
	Depth Depth
	// CompressionLevel is handed to the PNG encoder. PNG is lossless at
	// every level.
	CompressionLevel png.CompressionLevel

	// MaxWidth and MaxHeight bound the output size, keeping the aspect
	// ratio. Zero leaves the dimension unbounded.
	MaxWidth, MaxHeight int
	// Scaler is used when the frame exceeds MaxWidth or MaxHeight.
	Scaler draw.Scaler

	// BrightnessStep is the luma sampling distance used by Analyze.
	BrightnessStep int
}

// Depth represents the color depth of the output image
type Depth int

const (
	// DepthRGB565 reduces every pixel to 16 bits before encoding.
	DepthRGB565 Depth = iota
	// DepthRGBA8888 encodes the rasterized pixels as they are.
	DepthRGBA8888
)

// NewParams returns the default parameters: direct BT.601 conversion,
// RGB565 output at the original frame size.
func NewParams() Params {
	return Params{
		Codec:            DirectCodec{},
		Depth:            DepthRGB565,
		CompressionLevel: png.DefaultCompression,
		Scaler:           draw.ApproxBiLinear,
		BrightnessStep:   frame.DefaultBrightnessStep,
	}
}
