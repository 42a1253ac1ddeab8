package main

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/algebra/catalog"
	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/config"
	"github.com/c360studio/algebra/manifest"
	"github.com/c360studio/algebra/ring"
)

// App wires configuration, the catalog and manifest loading together for
// the CLI commands.
type App struct {
	cfg *config.Config
	log *slog.Logger
	cat *catalog.Catalog
}

// NewApp creates a new application instance on a fresh default catalog.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg: cfg,
		log: logger,
		cat: catalog.NewDefault(),
	}
}

// LoadManifests populates the catalog from the configured manifest paths
// plus any extra paths given on the command line.
func (a *App) LoadManifests(extra []string) error {
	paths := append([]string{}, a.cfg.Catalog.Paths...)
	paths = append(paths, extra...)
	if len(paths) == 0 {
		return nil
	}

	m, err := manifest.LoadGlob(paths)
	if err != nil {
		return err
	}
	if err := m.Build(a.cat); err != nil {
		return err
	}
	a.log.Debug("Manifests loaded",
		"patterns", len(paths),
		"structures", len(m.Structures))
	return nil
}

// Resolve resolves a structure name through the catalog.
func (a *App) Resolve(name string) (*ring.Structure, error) {
	s, err := a.cat.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	return s, nil
}

// Names lists the interned catalog names.
func (a *App) Names() []string {
	return a.cat.Names()
}

// IsField resolves whether s is a field, honoring the probe setting:
// with probing disabled only the declared lattice tag counts.
func (a *App) IsField(s *ring.Structure) bool {
	if a.cfg.Probe.Disable {
		return s.IsA(category.Field)
	}
	return ring.IsField(s)
}

// FieldVerdict reports how the field question resolves for display: the
// deciding tier and the verdict it produced.
func (a *App) FieldVerdict(s *ring.Structure) (tier string, verdict ring.Verdict) {
	if s.IsA(category.Field) {
		return "lattice", ring.VerdictTrue
	}
	if a.cfg.Probe.Disable {
		return "lattice", ring.VerdictFalse
	}
	if v := s.ProbeIsField(); v != ring.VerdictUnknown {
		return "probe", v
	}
	return "collapse", ring.VerdictUnknown
}
