package unisig

// Length limits, in code points.
const (
	DefaultMaxLength = 256  // Limit used when no WithMaxLength option is given.
	MaxLengthLimit   = 1024 // Largest accepted limit.
)

// Options configures signature construction.
type Options struct {
	MaxLength int // Maximum number of code points analyzed; longer text is truncated.
}

// Option represents a functional option for configuring [New].
type Option func(*Options)

// WithMaxLength sets the maximum number of code points to analyze. The value
// must be in (0, MaxLengthLimit]; [New] returns ErrMaxLength otherwise.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		o.MaxLength = n
	}
}

// DefaultOptions returns the options used by [New] before applying any
// functional overrides.
func DefaultOptions() Options {
	return Options{MaxLength: DefaultMaxLength}
}
