package cmd

import (
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/autorelease/application"
	"github.com/rios0rios0/autorelease/config"
	"github.com/rios0rios0/autorelease/domain"
	"github.com/rios0rios0/autorelease/infrastructure/provenance"
	gitProv "github.com/rios0rios0/autorelease/infrastructure/provenance/git"
	mtimeProv "github.com/rios0rios0/autorelease/infrastructure/provenance/mtime"
	"github.com/rios0rios0/autorelease/infrastructure/store"
)

// buildService wires config, store, and provenance into a ReleaseService
// through a DIG container. The resolved config is returned alongside so
// commands can read rendering options from it.
func buildService() (*application.ReleaseService, *config.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	container := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		func(c *config.Config) domain.FragmentStore {
			return store.NewDirectoryStore(c.ChangesDir)
		},
		func(c *config.Config) (domain.ProvenanceSource, error) {
			return buildProvenanceRegistry().Get(c.Provenance, c.ChangesDir)
		},
		func() domain.Clock { return time.Now },
		application.NewReleaseService,
	}
	for _, provide := range providers {
		if provideErr := container.Provide(provide); provideErr != nil {
			return nil, nil, fmt.Errorf("failed to register providers: %w", provideErr)
		}
	}

	var svc *application.ReleaseService
	if invokeErr := container.Invoke(func(s *application.ReleaseService) {
		svc = s
	}); invokeErr != nil {
		return nil, nil, fmt.Errorf("failed to build release service: %w", dig.RootCause(invokeErr))
	}

	return svc, cfg, nil
}

// resolveConfig loads the configuration respecting CLI precedence:
// explicit --config, then auto-detected file, then built-in defaults.
// Flag overrides are applied on top.
func resolveConfig() (*config.Config, error) {
	cfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	if changesDir != "" {
		cfg.ChangesDir = changesDir
	}
	if provSource != "" {
		cfg.Provenance = provSource
	}

	return cfg, nil
}

func loadConfigFile() (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debugf("Using config file: %s", configPath)
		return cfg, nil
	}

	found, findErr := config.FindConfigFile()
	if findErr != nil {
		logger.Debug("No config file found, using defaults")
		return config.Default(), nil
	}

	cfg, err := config.Load(found)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debugf("Using config file: %s", found)
	return cfg, nil
}

func buildProvenanceRegistry() *provenance.Registry {
	reg := provenance.NewRegistry()
	reg.Register("git", func(dir string) (domain.ProvenanceSource, error) {
		return gitProv.New(dir)
	})
	reg.Register("mtime", func(dir string) (domain.ProvenanceSource, error) {
		return mtimeProv.New(dir)
	})
	return reg
}
