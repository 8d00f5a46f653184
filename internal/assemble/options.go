package assemble

import (
	"io"
	"log"
)

// Option customizes a Matrix or an assembly run.
type Option func(*options)

type options struct {
	// number of workers used to score matrix rows
	threads int

	// where each merge is logged
	logger *log.Logger
}

// WithThreads scores matrix rows and columns on n workers. Values below 2
// score them serially on the calling goroutine.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// WithLogger logs every merge to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		threads: 1,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
