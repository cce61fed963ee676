package convert

import (
	"errors"
	"fmt"

	"github.com/visioncamera/faceframe/pkg/frame"
)

var (
	ErrEncodeFailure = errors.New("encode failure")
	ErrDecodeFailure = errors.New("decode failure")
)

// ConversionError is returned by every failed conversion. Kind is one of
// frame.ErrInvalidDimensions, frame.ErrInsufficientPlaneData,
// frame.ErrUnsupportedFormat, ErrEncodeFailure or ErrDecodeFailure.
type ConversionError struct {
	Op   string
	Kind error
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("convert: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("convert: %s: %v", e.Op, e.Err)
}

// Unwrap lets errors.Is match both the kind and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(op string, kind, err error) *ConversionError {
	return &ConversionError{Op: op, Kind: kind, Err: err}
}

// wrapError keeps an existing ConversionError and classifies anything else,
// falling back to fallback when err carries no known kind.
func wrapError(op string, fallback, err error) *ConversionError {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce
	}

	kind := fallback
	for _, k := range []error{
		frame.ErrInvalidDimensions,
		frame.ErrInsufficientPlaneData,
		frame.ErrUnsupportedFormat,
	} {
		if errors.Is(err, k) {
			kind = k
			break
		}
	}
	return newError(op, kind, err)
}
