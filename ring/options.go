// File: ring/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-ring/pool"
)

// Option customizes buffer construction.
type Option func(*settings)

type settings struct {
	forceHeap bool
	threshold uintptr
	logger    logrus.FieldLogger
}

var quietLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func newSettings(opts []Option) settings {
	s := settings{
		threshold: pool.InlineThreshold,
		logger:    quietLogger,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ForceHeap selects heap storage even when the shape would fit inline.
func ForceHeap() Option {
	return func(s *settings) {
		s.forceHeap = true
	}
}

// WithThreshold lowers the inline footprint limit for this buffer.
// Values above pool.InlineThreshold are clamped to it.
func WithThreshold(bytes uintptr) Option {
	return func(s *settings) {
		s.threshold = min(bytes, pool.InlineThreshold)
	}
}

// WithLogger routes debug output (storage selection, release) to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
