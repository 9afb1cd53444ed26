package bookstore

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/bookstore/pkg/catalogs"
	"github.com/agentstation/bookstore/pkg/constants"
	"github.com/agentstation/bookstore/pkg/errors"
	"github.com/agentstation/bookstore/pkg/identifiers"
	"github.com/agentstation/bookstore/pkg/logging"
)

// Option is a function that configures a Client
type Option func(*config) error

// config holds the Client configuration
type config struct {
	counterFile string
	fs          afero.Fs
	customStore identifiers.Store
	logger      *zerolog.Logger
	hooks       catalogs.Hooks
}

func defaultConfig() *config {
	return &config{
		counterFile: constants.DefaultCounterFile,
		fs:          afero.NewOsFs(),
		logger:      logging.Default(),
	}
}

func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// store returns the counter store described by the configuration.
func (c *config) store() identifiers.Store {
	if c.customStore != nil {
		return c.customStore
	}
	return identifiers.NewFileStore(c.counterFile, identifiers.WithFs(c.fs))
}

// WithCounterFile configures the path of the counter file
func WithCounterFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "counter_file",
				Message: "cannot be empty",
			}
		}
		c.counterFile = path
		return nil
	}
}

// WithFs configures the filesystem holding the counter file
func WithFs(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return &errors.ValidationError{
				Field:   "fs",
				Message: "cannot be nil",
			}
		}
		c.fs = fs
		return nil
	}
}

// WithStore configures a custom counter store, replacing the counter file
func WithStore(store identifiers.Store) Option {
	return func(c *config) error {
		if store == nil {
			return &errors.ValidationError{
				Field:   "store",
				Message: "cannot be nil",
			}
		}
		c.customStore = store
		return nil
	}
}

// WithEphemeral keeps counters in memory only, so identifiers restart at
// the base value on every run
func WithEphemeral() Option {
	return func(c *config) error {
		c.customStore = identifiers.NewMemoryStore(nil)
		return nil
	}
}

// WithLogger configures the logger shared by the registry and the catalog
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithHooks configures catalog event hooks
func WithHooks(hooks catalogs.Hooks) Option {
	return func(c *config) error {
		c.hooks = hooks
		return nil
	}
}
