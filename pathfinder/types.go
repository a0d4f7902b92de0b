package pathfinder

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/search"
)

// ErrGridNil is returned by New for a nil grid.
var ErrGridNil = errors.New("pathfinder: grid is nil")

// Option configures a Pathfinder via functional arguments.
type Option func(*Options)

// Options holds the logger and the options forwarded to every search.
type Options struct {
	// Logger receives one Debug entry per stage.
	Logger logrus.FieldLogger
	// Search options are applied to every search, before the per-call context.
	Search []search.Option
}

// DefaultOptions returns Options logging to logrus.StandardLogger with no
// extra search options.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchOptions appends options forwarded to every search, e.g. hooks.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// Segment is the part of a route that reaches one stage target.
type Segment struct {
	Target grid.Cell
	Steps  grid.Path
}

// Route is the outcome of a full query.
type Route struct {
	// Path is the concatenation of every segment; empty when unreachable.
	Path grid.Path
	// Segments holds one entry per stage when the route is reachable.
	Segments []Segment
	// Teleporters lists the teleporter indices consumed, in order.
	Teleporters []int
	// Blocked is the index of the first unreachable stage, or -1.
	Blocked int
}

// Reachable reports whether every stage was reached.
func (r *Route) Reachable() bool {
	return r.Blocked < 0 && len(r.Path) > 0
}
