// Package identifiers issues durable, per-prefix sequential identifiers
// such as "PB-1001". Counters are loaded from a Store when the Registry is
// opened and the full table is written back after every issuance.
package identifiers

import (
	"maps"
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookstore/pkg/constants"
	"github.com/agentstation/bookstore/pkg/errors"
	"github.com/agentstation/bookstore/pkg/logging"
)

// Registry maps a prefix to the last counter issued for it.
// Issue is safe for concurrent use.
type Registry struct {
	// mu guards counters. Increment and read-back happen under one lock.
	mu       sync.Mutex
	counters map[string]int

	// saveMu serializes writes so a later write never persists an older table.
	saveMu sync.Mutex

	store  Store
	base   int
	logger *zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for issuance events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBase sets the value an unseen prefix starts from. Defaults to constants.BaseCounter.
func WithBase(base int) Option {
	return func(r *Registry) {
		if base >= 0 {
			r.base = base
		}
	}
}

// Open loads the counter table from store and returns a ready Registry.
func Open(store Store, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, &errors.ValidationError{
			Field:   "store",
			Message: "cannot be nil",
		}
	}

	r := &Registry{
		store:  store,
		base:   constants.BaseCounter,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	counters, err := store.Load()
	if err != nil {
		return nil, errors.WrapResource("open", "registry", "", err)
	}
	if counters == nil {
		counters = make(map[string]int)
	}
	r.counters = counters

	r.logger.Debug().
		Int("prefixes", len(counters)).
		Msg("Loaded identifier counters")

	return r, nil
}

// Issue returns the next identifier for prefix and persists the counter table.
//
// If the table cannot be written the identifier has still been issued: Issue
// returns it together with a *errors.StorageError, and the counter is never
// handed out again by this Registry. A prefix whose counter reached
// math.MaxInt fails with errors.ErrCounterExhausted and issues nothing.
func (r *Registry) Issue(prefix string) (string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}

	r.mu.Lock()
	current, ok := r.counters[prefix]
	if !ok {
		current = r.base
	}
	if current >= math.MaxInt {
		r.mu.Unlock()
		return "", errors.NewResourceError("issue", "identifier", prefix, errors.ErrCounterExhausted)
	}
	next := current + 1
	r.counters[prefix] = next
	r.mu.Unlock()

	id := FormatID(prefix, next)

	if err := r.persist(); err != nil {
		r.logger.Error().
			Err(err).
			Str("prefix", prefix).
			Str("id", id).
			Msg("Failed to persist identifier counters")
		return id, err
	}

	r.logger.Debug().
		Str("prefix", prefix).
		Str("id", id).
		Msg("Issued identifier")

	return id, nil
}

// Flush writes the current table to the store. Callers can use it to retry
// after Issue reported a storage failure.
func (r *Registry) Flush() error {
	return r.persist()
}

// persist snapshots the table after acquiring the save lock, so every write
// carries at least the increments that were visible before it started.
func (r *Registry) persist() error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()
	return r.store.Save(r.Snapshot())
}

// Peek returns the last counter issued for prefix, or the base value if none was.
func (r *Registry) Peek(prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if counter, ok := r.counters[prefix]; ok {
		return counter
	}
	return r.base
}

// Snapshot returns a copy of the counter table.
func (r *Registry) Snapshot() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.counters)
}

// Prefixes returns the known prefixes in sorted order.
func (r *Registry) Prefixes() []string {
	r.mu.Lock()
	prefixes := make([]string, 0, len(r.counters))
	for prefix := range r.counters {
		prefixes = append(prefixes, prefix)
	}
	r.mu.Unlock()

	sort.Strings(prefixes)
	return prefixes
}
