//go:build linux

package logging

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// OutputCapture redirects the process stderr file descriptor into the
// structured log. WebKit and GTK write warnings straight to fd 2 from C code,
// bypassing zerolog; without this they interleave raw text with log lines.
type OutputCapture struct {
	original *os.File
	pipeR    *os.File
	pipeW    *os.File
	done     chan struct{}
}

// CaptureStderr duplicates the current stderr, points fd 2 at a pipe, and
// forwards every line written to it through the given logger at debug level.
// The returned capture's Original() writer must be used as the logger output
// to avoid feeding the logger back into its own pipe.
func CaptureStderr(logger zerolog.Logger) (*OutputCapture, error) {
	origFd, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		return nil, fmt.Errorf("dup stderr: %w", err)
	}
	original := os.NewFile(uintptr(origFd), "stderr-original")

	pipeR, pipeW, err := os.Pipe()
	if err != nil {
		_ = original.Close()
		return nil, fmt.Errorf("create capture pipe: %w", err)
	}

	if err := unix.Dup3(int(pipeW.Fd()), int(os.Stderr.Fd()), 0); err != nil {
		_ = original.Close()
		_ = pipeR.Close()
		_ = pipeW.Close()
		return nil, fmt.Errorf("redirect stderr: %w", err)
	}

	c := &OutputCapture{
		original: original,
		pipeR:    pipeR,
		pipeW:    pipeW,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(pipeR)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			logger.Debug().Str("stream", "stderr").Msg(line)
		}
	}()

	return c, nil
}

// Original returns the pre-capture stderr, safe for logger output.
func (c *OutputCapture) Original() *os.File {
	return c.original
}

// Close restores the original stderr and stops the forwarding goroutine.
func (c *OutputCapture) Close() error {
	if err := unix.Dup3(int(c.original.Fd()), int(os.Stderr.Fd()), 0); err != nil {
		return fmt.Errorf("restore stderr: %w", err)
	}
	_ = c.pipeW.Close()
	<-c.done
	_ = c.pipeR.Close()
	return nil
}
