// Package convert turns camera frames into Base64 encoded PNG images.
//
// A frame goes through the following steps:
//
//	planes -> interleaved buffer -> YCbCr -> packed pixels -> RGB565 -> PNG -> Base64
//
// The intermediate buffers are owned by a Converter and reused between frames.
package convert

import (
	"sync"

	"github.com/google/uuid"
	"github.com/visioncamera/faceframe/internal/logging"
	"github.com/visioncamera/faceframe/pkg/frame"
)

var logger = logging.NewLogger("convert")

// Converter converts frames one at a time. Calls on the same Converter are
// serialized; use one Converter per goroutine to convert in parallel.
type Converter struct {
	mu sync.Mutex

	id       string
	params   Params
	decoders map[frame.Format]frame.Decoder

	interleaved []byte
	scratch     Scratch
}

// Result is a converted frame together with its metadata.
type Result struct {
	// Image is the Base64 encoded PNG.
	Image         string
	Width, Height int
	// Brightness is the mean luma of the frame in [0, 1].
	Brightness float64
}

// NewConverter creates a Converter. Zero fields of p fall back to NewParams.
func NewConverter(p Params) *Converter {
	defaults := NewParams()
	if p.Codec == nil {
		p.Codec = defaults.Codec
	}
	if p.Scaler == nil {
		p.Scaler = defaults.Scaler
	}
	if p.BrightnessStep <= 0 {
		p.BrightnessStep = defaults.BrightnessStep
	}

	return &Converter{
		id:       uuid.NewString(),
		params:   p,
		decoders: make(map[frame.Format]frame.Decoder),
	}
}

// ID identifies the converter in log messages.
func (c *Converter) ID() string {
	return c.id
}

// Convert encodes img as a Base64 PNG. On failure it returns an empty string
// and a *ConversionError.
func (c *Converter) Convert(img frame.PlanarImage) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.scratch.Reset()

	encoded, err := c.convert(img)
	if err != nil {
		logger.Warnf("converter %s: %dx%d frame dropped: %v", c.id, img.Width, img.Height, err)
		return "", err
	}
	return encoded, nil
}

// Analyze converts img and measures its brightness.
func (c *Converter) Analyze(img frame.PlanarImage) (Result, error) {
	encoded, err := c.Convert(img)
	if err != nil {
		return Result{}, err
	}

	brightness, err := frame.Brightness(img, c.params.BrightnessStep)
	if err != nil {
		return Result{}, wrapError("brightness", frame.ErrInsufficientPlaneData, err)
	}

	return Result{
		Image:      encoded,
		Width:      img.Width,
		Height:     img.Height,
		Brightness: brightness,
	}, nil
}

func (c *Converter) decoder(f frame.Format) (frame.Decoder, error) {
	if f == "" {
		f = frame.DefaultFormat
	}
	if d, ok := c.decoders[f]; ok {
		return d, nil
	}

	d, err := frame.NewDecoder(f)
	if err != nil {
		return nil, err
	}
	c.decoders[f] = d
	return d, nil
}

func (c *Converter) convert(img frame.PlanarImage) (string, error) {
	if err := img.Validate(); err != nil {
		return "", wrapError("validate", frame.ErrInvalidDimensions, err)
	}

	dec, err := c.decoder(img.Format)
	if err != nil {
		return "", wrapError("decoder", frame.ErrUnsupportedFormat, err)
	}

	c.interleaved = frame.Interleave(c.interleaved, img)
	ycc, err := dec.Decode(c.interleaved, img.Layout())
	if err != nil {
		return "", wrapError("yuv decode", ErrDecodeFailure, err)
	}

	raster, err := c.params.Codec.Rasterize(&c.scratch, ycc)
	if err != nil {
		return "", wrapError("rasterize", ErrDecodeFailure, err)
	}
	raster = fit(raster, c.params)

	if c.params.Depth == DepthRGB565 {
		raster = toRGB565(raster)
	}

	c.scratch.Reset()
	if err := encodePNG(&c.scratch, raster, c.params.CompressionLevel); err != nil {
		return "", newError("png encode", ErrEncodeFailure, err)
	}

	encoded := encodeBase64(c.scratch.Bytes())
	logger.Debugf("converter %s: %dx%d frame encoded to %d PNG bytes", c.id, img.Width, img.Height, c.scratch.Len())
	return encoded, nil
}

var defaultConverter = NewConverter(NewParams())

// Convert encodes img with a process wide Converter using the default Params.
// Concurrent callers wait for each other.
func Convert(img frame.PlanarImage) (string, error) {
	return defaultConverter.Convert(img)
}
