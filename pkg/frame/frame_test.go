package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayImage(width, height int) PlanarImage {
	y := make([]byte, width*height)
	c := make([]byte, int(frameSizeNV21(width, height))-width*height)
	for i := range y {
		y[i] = 128
	}
	for i := range c {
		c[i] = 128
	}
	return PlanarImage{Width: width, Height: height, Planes: [][]byte{y, c}}
}

func TestPlanarImageValidate(t *testing.T) {
	cases := map[string]struct {
		img PlanarImage
		err error
	}{
		"Gray4x4": {
			img: grayImage(4, 4),
		},
		"Odd3x5": {
			img: grayImage(3, 5),
		},
		"NV12": {
			img: func() PlanarImage {
				img := grayImage(2, 2)
				img.Format = FormatNV12
				return img
			}(),
		},
		"ZeroWidth": {
			img: PlanarImage{Width: 0, Height: 2, Planes: [][]byte{{}, {}}},
			err: ErrInvalidDimensions,
		},
		"ZeroHeight": {
			img: PlanarImage{Width: 2, Height: 0, Planes: [][]byte{{}, {}}},
			err: ErrInvalidDimensions,
		},
		"NegativeWidth": {
			img: PlanarImage{Width: -4, Height: 4},
			err: ErrInvalidDimensions,
		},
		"NarrowStride": {
			img: func() PlanarImage {
				img := grayImage(4, 4)
				img.YStride = 3
				return img
			}(),
			err: ErrInvalidDimensions,
		},
		"ShortLuma": {
			img: PlanarImage{Width: 2, Height: 2, Planes: [][]byte{{1, 2, 3}, {128, 128}}},
			err: ErrInsufficientPlaneData,
		},
		"ShortChroma": {
			img: PlanarImage{Width: 4, Height: 4, Planes: [][]byte{make([]byte, 16), make([]byte, 7)}},
			err: ErrInsufficientPlaneData,
		},
		"MissingChroma": {
			img: PlanarImage{Width: 2, Height: 2, Planes: [][]byte{make([]byte, 4)}},
			err: ErrInsufficientPlaneData,
		},
		"UnknownFormat": {
			img: func() PlanarImage {
				img := grayImage(2, 2)
				img.Format = "YUY2"
				return img
			}(),
			err: ErrUnsupportedFormat,
		},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			err := c.img.Validate()
			if c.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestPlanarImageValidateOverflow(t *testing.T) {
	cases := map[string]PlanarImage{
		"MaxSquare": {
			Width:  math.MaxInt,
			Height: math.MaxInt,
			Planes: [][]byte{{}, {}},
		},
		"MaxWidth": {
			Width:  math.MaxInt,
			Height: 1,
			Planes: [][]byte{{}, {}},
		},
		"LumaStride": {
			Width:   2,
			Height:  4,
			YStride: math.MaxInt / 2,
			Planes:  [][]byte{{1}, {1, 1}},
		},
		"ChromaStride": {
			Width:   2,
			Height:  8,
			CStride: math.MaxInt / 2,
			Planes:  [][]byte{make([]byte, 16), {1, 1}},
		},
		"LumaRows": {
			Width:  math.MaxInt / 2,
			Height: 4,
			Planes: [][]byte{{1}, {1, 1}},
		},
	}

	for name, img := range cases {
		img := img
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, img.Validate(), ErrInvalidDimensions)

			_, err := Brightness(img, 1)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestDecodeOverflow(t *testing.T) {
	l := Layout{Width: math.MaxInt / 2, Height: 4, YStride: math.MaxInt / 2, CStride: math.MaxInt/2 + 1, YLen: 1}

	img, err := decodeNV21(make([]byte, 3), l)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.Nil(t, img)
}

func TestPlanarImageLayout(t *testing.T) {
	img := grayImage(5, 3)
	l := img.Layout()

	assert.Equal(t, Layout{Width: 5, Height: 3, YStride: 5, CStride: 6, YLen: 15}, l)
	assert.Equal(t, 15, l.lumaSize())
	assert.Equal(t, 12, l.chromaSize())

	img.YStride, img.CStride = 8, 8
	l = img.Layout()
	assert.Equal(t, 8, l.YStride)
	assert.Equal(t, 8, l.CStride)
}

func TestFrameSize(t *testing.T) {
	for _, f := range []Format{FormatNV21, FormatNV12} {
		size := FrameSizeMap[f]
		require.NotNil(t, size, f)
		assert.Equal(t, uint(24), size(4, 4))
		assert.Equal(t, uint(640*480*3/2), size(640, 480))
		assert.Equal(t, uint(9+8), size(3, 3))
	}
}

func TestInterleave(t *testing.T) {
	img := PlanarImage{Width: 2, Height: 2, Planes: [][]byte{{1, 2, 3, 4}, {5, 6}}}

	buf := Interleave(nil, img)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, buf)

	// A smaller frame must not see the tail of the previous one.
	small := PlanarImage{Width: 1, Height: 1, Planes: [][]byte{{9}, {8, 7}}}
	reused := Interleave(buf, small)
	assert.Equal(t, []byte{9, 8, 7}, reused)
	assert.Same(t, &buf[0], &reused[0], "expected the buffer to be reused")

	// The caller's planes stay untouched.
	assert.Equal(t, []byte{1, 2, 3, 4}, img.Planes[0])
}

func TestBrightness(t *testing.T) {
	b, err := Brightness(grayImage(4, 4), 0)
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, b, 1e-9)

	img := grayImage(4, 2)
	copy(img.Planes[0], []byte{0, 255, 0, 255, 255, 255, 255, 255})
	b, err = Brightness(img, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.0/8, b, 1e-9)

	// Step 2 samples (0,0), (2,0) only.
	b, err = Brightness(img, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, b, 1e-9)

	_, err = Brightness(PlanarImage{Width: 0, Height: 1}, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestBrightnessStride(t *testing.T) {
	img := PlanarImage{
		Width:   2,
		Height:  2,
		YStride: 3,
		Planes: [][]byte{
			{255, 255, 0, 255, 255},
			{128, 128},
		},
	}
	b, err := Brightness(img, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, b, 1e-9, "padding bytes must not be sampled")
}
