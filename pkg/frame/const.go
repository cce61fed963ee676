package frame

// Format identifies the byte layout of a camera frame.
type Format string

const (
	// YUV 4:2:0 semi-planar formats

	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
)

// DefaultFormat is assumed when a PlanarImage leaves Format empty. Android camera
// frames deliver the chroma plane in V, U order.
const DefaultFormat = FormatNV21
