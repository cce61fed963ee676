package frame

// Interleave concatenates the luma plane and the chroma plane of img into dst,
// byte for byte, and returns the filled slice. dst is reused when its capacity
// is large enough and reallocated otherwise; it is never shrunk.
//
// img must carry at least two planes.
func Interleave(dst []byte, img PlanarImage) []byte {
	return storeInOrder(dst, img.Planes[0], img.Planes[1])
}

func storeInOrder(dst []byte, srcs ...[]byte) []byte {
	var neededSize int

	for _, src := range srcs {
		neededSize += len(src)
	}

	if cap(dst) >= neededSize {
		dst = dst[:neededSize]
	} else {
		dst = make([]byte, neededSize)
	}

	var currentLen int
	for _, src := range srcs {
		copy(dst[currentLen:], src)
		currentLen += len(src)
	}
	return dst
}
