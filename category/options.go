// SPDX-License-Identifier: MIT

package category

import "runtime"

// Option configures the parallel algorithms (ComposeBatch, VerifyLaws).
type Option func(*options)

type options struct {
	jobs int // maximum concurrent goroutines
}

func defaultOptions() options {
	return options{jobs: runtime.GOMAXPROCS(0)}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithJobs bounds the number of concurrent compositions.
// Panics on n < 1 to surface programmer error early.
func WithJobs(n int) Option {
	if n < 1 {
		panic("category: WithJobs(n < 1)")
	}

	return func(o *options) { o.jobs = n }
}
