package render

import "github.com/pkg/errors"

// Startup failures reported by front ends while acquiring their display.
var (
	ErrDisplaySurfaceCreationFailed = errors.New("couldn't create window")
	ErrDrawingContextCreationFailed = errors.New("couldn't create renderer")
)

// IsStartupFailure reports whether err stems from display acquisition.
func IsStartupFailure(err error) bool {
	return errors.Is(err, ErrDisplaySurfaceCreationFailed) || errors.Is(err, ErrDrawingContextCreationFailed)
}
