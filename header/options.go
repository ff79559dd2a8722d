package header

import (
	"log"
	"os"
)

// config holds the behavior Options configure. It has no zero-value
// exported surface: callers go through Option.
type config struct {
	strict bool
	warn   *log.Logger
}

func defaultConfig() *config {
	return &config{
		strict: true,
		warn:   log.New(os.Stderr, "blackbox: ", 0),
	}
}

// Option configures Parse. The default config (from defaultConfig) is
// strict mode with warnings on os.Stderr, matching the behavior described in
// spec.md before any Option is applied.
type Option func(*config)

// WithStrict controls whether missing required metadata (firmware
// revision/type, board info, craft name, vbat reference) at finalization is
// fatal (strict=true, the default, returning MissingHeader) or defaulted to
// the zero value (strict=false). spec.md leaves this as an open question;
// see DESIGN.md for why strict is the default.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithLogger overrides the logger used for warn-level messages, such as a
// "width" sub-header being recognized but ignored. Debug-level tracing of
// accepted/ignored header lines always goes through mewkiz/pkg/dbg
// regardless of this option, matching the rest of this codebase's use of
// dbg for that purpose.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.warn = l }
}

func newConfig(opts []Option) *config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}
