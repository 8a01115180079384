// Package paths defines options and errors for simple-path enumeration.
package paths

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil adjacency is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrBadLimit is returned when maxDepth or maxPaths is below 1.
	ErrBadLimit = errors.New("paths: limits must be positive")
)

// Adjacency is the read-only graph view enumeration needs.
type Adjacency interface {
	HasWord(w string) bool
	Neighbors(w string) []string
}

// Option configures enumeration.
type Option func(*Options)

// Options holds cancellation and hooks for Bounded and Count.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Count has no other way to be cut short.
	Ctx context.Context

	// OnPath, if non-nil, is called for every complete start→end path found.
	// The slice is only valid during the call. Returning an error aborts.
	OnPath func(path []string) error
}

// DefaultOptions returns background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked between expansions.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath installs a hook called for each path found.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
