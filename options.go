package colorconv

import "log/slog"

// ParseOption configures [Parse].
//
// Example:
//
//	// Reject "hsv(400, 2, 1)" instead of converting it out of gamut.
//	c, err := colorconv.Parse("hsv(400, 2, 1)", colorconv.WithStrictRange())
type ParseOption func(*parseOptions)

// parseOptions holds optional configuration for Parse.
type parseOptions struct {
	names  bool
	strict bool
	logger *slog.Logger
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() parseOptions {
	return parseOptions{
		names:  true,
		strict: false,
		logger: nil, // Falls back to Logger()
	}
}

// WithNamedColors enables or disables color keyword lookup. Enabled by
// default.
func WithNamedColors(enabled bool) ParseOption {
	return func(o *parseOptions) {
		o.names = enabled
	}
}

// WithStrictRange rejects components outside their nominal range with
// [ErrOutOfRange]. Without it, out-of-range values are passed to the
// conversion unchanged and may produce out-of-gamut colors.
func WithStrictRange() ParseOption {
	return func(o *parseOptions) {
		o.strict = true
	}
}

// WithLogger overrides the package logger for a single Parse call.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOptions) {
		o.logger = l
	}
}
