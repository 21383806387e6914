package config

import "fmt"

// ValidationPredicate evaluates a loaded Config and returns an error if invalid.
type ValidationPredicate func(*Config) error

// validatingLoader wraps a Loader to run additional validation predicates at load time.
type validatingLoader struct {
	Loader
	predicates []ValidationPredicate
}

// NewValidatingLoader creates a loader that runs validation predicates after Load().
func NewValidatingLoader(inner Loader, predicates ...ValidationPredicate) *validatingLoader {
	return &validatingLoader{
		Loader:     inner,
		predicates: predicates,
	}
}

// Load delegates to inner loader, then runs validation predicates.
func (l *validatingLoader) Load(path string) (*Config, error) {
	cfg, err := l.Loader.Load(path)
	if err != nil {
		return nil, err
	}

	for _, predicate := range l.predicates {
		if err := predicate(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// RequireCommands rejects a config that leaves nothing to extract.
func RequireCommands(cfg *Config) error {
	if len(cfg.Extractable()) == 0 {
		return fmt.Errorf("%w: no commands configured in %s", ErrInvalidValue, cfg.Path())
	}

	return nil
}
