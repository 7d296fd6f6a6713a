// SPDX-License-Identifier: MIT

package hashmap

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Defaults used by Default and by New when no option overrides them.
const (
	DefaultCapacity      = 16
	DefaultMaxLoadFactor = 2.0
)

// Sentinel errors for hash map operations.
var (
	// ErrKeyNotFound is returned by At (and raised by MustAt) for an absent key.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrInvalidLoadFactor rejects a max load factor that is not a finite positive number.
	ErrInvalidLoadFactor = errors.New("hashmap: max load factor must be a finite positive number")

	// ErrOptionViolation is returned by constructors when an Option was invalid.
	ErrOptionViolation = errors.New("hashmap: invalid option supplied")

	// ErrNilHasher is returned by NewFunc when no hasher is given.
	ErrNilHasher = errors.New("hashmap: hasher is nil")
)

// Options holds the tunables of a HashMap.
type Options struct {
	// MaxLoadFactor is the size/buckets ratio that triggers a rehash.
	MaxLoadFactor float64

	// Logger, if non-nil, receives a Debug record for every rehash.
	Logger *slog.Logger

	// err records the first invalid option.
	err error
}

// Option configures a HashMap at construction time.
type Option func(*Options)

// DefaultOptions returns the defaults: max load factor 2.0 and no logging.
func DefaultOptions() Options {
	return Options{MaxLoadFactor: DefaultMaxLoadFactor}
}

// WithMaxLoadFactor sets the rehash threshold. f must be finite and > 0;
// anything else makes the constructor fail with ErrOptionViolation.
func WithMaxLoadFactor(f float64) Option {
	return func(o *Options) {
		if err := validateLoadFactor(f); err != nil {
			if o.err == nil {
				o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			}

			return
		}
		o.MaxLoadFactor = f
	}
}

// WithLogger routes rehash diagnostics to l. A nil logger disables them.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func validateLoadFactor(f float64) error {
	if !(f > 0) || math.IsInf(f, 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, f)
	}

	return nil
}
