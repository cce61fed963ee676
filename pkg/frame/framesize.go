package frame

// Return a function to get the number of bytes a tightly packed frame will occupy in the given format
var FrameSizeMap = map[Format]frameSizeFunc{
	FormatNV21: frameSizeNV21,
	FormatNV12: frameSizeNV21, // NV12 and NV21 have the same frame size
}

type frameSizeFunc func(width, height int) uint

func frameSizeNV21(width, height int) uint {
	yi := width * height
	// one Cb and one Cr byte per 2x2 block, rounded up on odd edges
	ci := 2 * ((width + 1) / 2) * ((height + 1) / 2)
	return uint(yi + ci)
}
