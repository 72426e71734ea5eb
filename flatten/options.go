// SPDX-License-Identifier: MIT

package flatten

// DefaultTrailingDwell is the zero-value policy: no dwell is charged after
// the final pulse of a level.
const DefaultTrailingDwell = false

// Options carries the edge-case policy shared by the primitives and the
// nested composers. Build it through Option constructors.
type Options struct {
	// TrailingDwell charges a dwell after the final pulse of a level that
	// feeds an enclosing structure (is_last_level == false).
	TrailingDwell bool
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the zero-surprise policy used when no Option is
// passed.
func DefaultOptions() Options {
	return Options{TrailingDwell: DefaultTrailingDwell}
}

// WithTrailingDwell charges a dwell after the final pulse.
//
//   - FlattenPulseHistory: t_irr = n·(p + d) instead of (n-1)·(p + d) + p.
//   - FlattenLevels, FlattenAllLevels, FlattenSchedule: applies to every
//     level except the outermost, whose trailing gap belongs to the
//     enclosing schedule.
func WithTrailingDwell() Option {
	return func(o *Options) { o.TrailingDwell = true }
}

// gatherOptions folds opts over the defaults. Nil options are skipped.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
