package lint

// Config controls which findings are reported. It never changes how token
// streams are recognized.
type Config struct {
	// IgnorePercentFormats suppresses the error for logger statements
	// that apply the % operator to their format string.
	IgnorePercentFormats bool

	// SuppressWarnings drops all WARNING-severity findings. ERROR
	// findings are always reported.
	SuppressWarnings bool
}
