package analyzer

import "log/slog"

// Option configures an Analyzer
type Option func(*Analyzer)

// WithMaxSourceSize sets the maximum source size in bytes, 0 disables the limit
func WithMaxSourceSize(size int) Option {
	return func(a *Analyzer) {
		a.maxSourceSize = size
	}
}

// WithLogger sets the logger used for debug records about skipped module calls
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}
