package convert

import (
	"image"

	"golang.org/x/image/draw"
)

// fitSize returns the largest size no bigger than (maxWidth, maxHeight) with
// the aspect ratio of (width, height). Non positive bounds are ignored.
func fitSize(width, height, maxWidth, maxHeight int) (int, int) {
	w, h := width, height
	if maxWidth > 0 && w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
	}
	if maxHeight > 0 && h > maxHeight {
		w = w * maxHeight / h
		h = maxHeight
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// fit scales src down to the bounds of p. src is returned as is when it
// already fits.
func fit(src image.Image, p Params) image.Image {
	if p.MaxWidth <= 0 && p.MaxHeight <= 0 {
		return src
	}

	bounds := src.Bounds()
	w, h := fitSize(bounds.Dx(), bounds.Dy(), p.MaxWidth, p.MaxHeight)
	if w == bounds.Dx() && h == bounds.Dy() {
		return src
	}

	scaler := p.Scaler
	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
