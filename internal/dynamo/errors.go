package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidGrid indicates a particle grid too small to form a band.
	ErrInvalidGrid = errors.New("dynamo: invalid particle grid dimensions")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownParam indicates a parameter name that no component accepts.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrBufferMismatch indicates a mesh or raster buffer whose size no longer
	// matches the grid it was built for.
	ErrBufferMismatch = errors.New("dynamo: buffer size does not match grid")

	// ErrUnstable indicates the band solver produced non-finite positions.
	ErrUnstable = errors.New("dynamo: band solver diverged")

	// ErrAssetLoad indicates a decorative model could not be loaded.
	ErrAssetLoad = errors.New("dynamo: asset load failed")
)

// FrameError wraps an error with frame context.
type FrameError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
