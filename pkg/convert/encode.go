package convert

import (
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/visioncamera/faceframe/pkg/frame"
	"golang.org/x/image/draw"
)

// pngBufferPool shares PNG encoder buffers between converters.
type pngBufferPool struct {
	pool sync.Pool
}

func (p *pngBufferPool) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *pngBufferPool) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

var pngBuffers = &pngBufferPool{}

// toRGB565 repacks src into 16-bit pixels. The low bits of every channel are lost.
func toRGB565(src image.Image) *frame.RGB565 {
	bounds := src.Bounds()
	dst := frame.NewRGB565(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

func encodePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	enc := png.Encoder{
		CompressionLevel: level,
		BufferPool:       pngBuffers,
	}
	return enc.Encode(w, img)
}

func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
