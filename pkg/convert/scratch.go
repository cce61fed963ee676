package convert

import "bytes"

// Scratch is a reusable byte accumulator for encoder output. Reset keeps the
// capacity, so steady state conversions do not allocate. The zero value is
// ready to use. Scratch is not safe for concurrent use.
type Scratch struct {
	bytes.Buffer
}

// NewScratch creates a Scratch with initialSize bytes of capacity.
func NewScratch(initialSize int) *Scratch {
	s := &Scratch{}
	s.Grow(initialSize)
	return s
}
