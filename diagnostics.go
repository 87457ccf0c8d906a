package radial

import (
	"errors"
	"fmt"
)

// ErrPaintTypeMismatch is matched by every *PaintMismatchError.
var ErrPaintTypeMismatch = errors.New("radial: paint type mismatch")

// PaintMismatchError reports a Material whose paint the Filler cannot draw.
type PaintMismatchError struct {
	Expected PaintType
	Actual   PaintType
}

func (e *PaintMismatchError) Error() string {
	return fmt.Sprintf("radial: paint type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Unwrap returns ErrPaintTypeMismatch.
func (e *PaintMismatchError) Unwrap() error {
	return ErrPaintTypeMismatch
}

// Publisher receives diagnostics raised during a fill.
type Publisher interface {
	Publish(err error)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(err error)

// Publish calls f(err).
func (f PublisherFunc) Publish(err error) { f(err) }

// logPublisher writes diagnostics to the package logger at warn level.
type logPublisher struct{}

func (logPublisher) Publish(err error) {
	Logger().Warn("radial: fill skipped", "err", err)
}
