package persistence

import "time"

// Option configures a session repository.
type Option func(*repositoryOptions)

type repositoryOptions struct {
	now func() time.Time
}

// WithClock replaces the clock used to stamp and expire sessions.
func WithClock(now func() time.Time) Option {
	return func(o *repositoryOptions) {
		o.now = now
	}
}

func applyOptions(opts []Option) repositoryOptions {
	o := repositoryOptions{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
