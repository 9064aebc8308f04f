package lionshare

import (
	"log/slog"

	"github.com/crimson-sun/lionshare/internal/engine/roster"
)

type options struct {
	general []string
	extra   []string
	logger  *slog.Logger
}

// Option configures a Lionshare instance.
type Option func(*options)

// WithGeneralAwards replaces the roster of session-wide awards, which are
// never credited to a single vehicle.
func WithGeneralAwards(names []string) Option {
	return func(o *options) {
		o.general = append([]string(nil), names...)
	}
}

// WithExtraGeneralAwards adds names to the roster without replacing it.
func WithExtraGeneralAwards(names ...string) Option {
	return func(o *options) {
		o.extra = append(o.extra, names...)
	}
}

// WithLogger sets the logger for debug tracing. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		general: roster.DefaultGeneral(),
		logger:  slog.Default(),
	}
}

// DefaultGeneralAwards returns the built-in roster of session-wide awards.
func DefaultGeneralAwards() []string {
	return roster.DefaultGeneral()
}
