package zone

import (
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/rs/zerolog"

	"github.com/mrz1836/worldclock/internal/constants"
	"github.com/mrz1836/worldclock/internal/errors"
)

// Resolver turns zone ids into *time.Location values. Successful lookups are
// kept in a bounded in-memory cache; failures are never cached, so a zone
// database fix is picked up on the next call.
type Resolver struct {
	cache  *otter.Cache[string, *time.Location]
	load   func(name string) (*time.Location, error)
	logger zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithLoader replaces time.LoadLocation. Intended for tests.
func WithLoader(load func(name string) (*time.Location, error)) ResolverOption {
	return func(r *Resolver) {
		r.load = load
	}
}

// NewResolver creates a Resolver backed by the system zone database.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache: otter.Must(&otter.Options[string, *time.Location]{
			MaximumSize: constants.LocationCacheSize,
		}),
		load:   time.LoadLocation,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the location for id. An id that cannot be resolved yields
// an *errors.InvalidTimeZoneError naming it. The empty id is rejected rather
// than treated as UTC.
func (r *Resolver) Resolve(id string) (*time.Location, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewInvalidTimeZoneError(id, errors.ErrEmptyValue)
	}

	if loc, ok := r.cache.GetIfPresent(id); ok {
		return loc, nil
	}

	loc, err := r.load(id)
	if err != nil {
		r.logger.Debug().Str("zone", id).Err(err).Msg("zone lookup failed")
		return nil, errors.NewInvalidTimeZoneError(id, err)
	}

	r.cache.Set(id, loc)
	r.logger.Debug().Str("zone", id).Msg("zone resolved")
	return loc, nil
}

// Valid reports whether id resolves.
func (r *Resolver) Valid(id string) bool {
	_, err := r.Resolve(id)
	return err == nil
}
