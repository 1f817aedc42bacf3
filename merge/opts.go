package merge

import "log/slog"

type mergeOpts struct {
	overrides map[string]string
	log       *slog.Logger
}

type Option func(*mergeOpts)

// Overrides sets annotations by address.  They are applied to the target
// before merging and replace annotations written in the target.
func Overrides(m map[string]string) Option {
	return func(o *mergeOpts) { o.overrides = m }
}

func Logger(l *slog.Logger) Option {
	return func(o *mergeOpts) { o.log = l }
}
