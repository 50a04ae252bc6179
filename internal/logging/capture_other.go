//go:build !linux

package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// OutputCapture is a no-op on non-Linux platforms.
type OutputCapture struct{}

// CaptureStderr is only implemented on Linux; elsewhere C-side output stays
// on the raw stderr.
func CaptureStderr(_ zerolog.Logger) (*OutputCapture, error) {
	return &OutputCapture{}, nil
}

// Original returns the process stderr.
func (c *OutputCapture) Original() *os.File {
	return os.Stderr
}

// Close is a no-op.
func (c *OutputCapture) Close() error {
	return nil
}
