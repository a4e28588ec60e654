package plan

import (
	"context"
	"maps"
	"slices"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"uploadwire/internal/config"
	"uploadwire/internal/modules"
	"uploadwire/internal/registry"
	"uploadwire/internal/services"
)

// Resolver turns a validated configuration into a Plan.
type Resolver struct {
	cfg     *config.Config
	modules *modules.Table
	reader  registry.Reader
	catalog *services.Catalog
	fs      afero.Fs
	logger  *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFs sets the filesystem used for metadata detection and the file
// cache. The default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithCatalog replaces the built-in service catalog.
func WithCatalog(c *services.Catalog) Option {
	return func(r *Resolver) {
		if c != nil {
			r.catalog = c
		}
	}
}

// NewResolver creates a Resolver for cfg. mods may be nil when no modules
// are installed. reader is consulted for parameters and for definitions the
// catalog does not provide; it is never modified. A nil reader is an empty
// registry.
func NewResolver(cfg *config.Config, mods *modules.Table, reader registry.Reader, opts ...Option) *Resolver {
	if reader == nil {
		reader = registry.NewContainer()
	}

	r := &Resolver{
		cfg:     cfg,
		modules: mods,
		reader:  reader,
		catalog: services.Default(),
		fs:      afero.NewOsFs(),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve runs the resolution pipeline. On error no plan is returned.
func (r *Resolver) Resolve(ctx context.Context) (*Plan, error) {
	p := &Plan{Config: cloneConfig(r.cfg)}

	steps := []struct {
		name string
		run  func(*Plan) error
	}{
		{"files", r.loadFiles},
		{"drivers", r.defaultDrivers},
		{"storage", r.resolveStorage},
		{"metadata", r.resolveDirectories},
		{"cache", r.resolveCache},
		{"namers", r.materializeNamers},
		{"listeners", r.registerListeners},
		{"parameters", r.setParameters},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := s.run(p); err != nil {
			r.logger.Debug("resolution failed", zap.String("step", s.name), zap.Error(err))
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureCacheDir(p); err != nil {
		return nil, err
	}

	r.logger.Info("configuration resolved",
		zap.Int("mappings", len(p.Config.Mappings)),
		zap.Int("listeners", len(p.Listeners)),
		zap.Int("directories", len(p.Directories)),
		zap.Stringer("cache", p.Cache.Kind),
		zap.String("storage", p.Storage),
	)

	return p, nil
}

// has reports whether id is defined by the plan so far or by the reader.
func (r *Resolver) has(p *Plan, id string) bool {
	return slices.Contains(p.Defines(), id) || r.reader.HasDefinition(id)
}

func cloneConfig(cfg *config.Config) *config.Config {
	out := *cfg
	out.Metadata.Directories = slices.Clone(cfg.Metadata.Directories)
	out.Mappings = slices.Clone(cfg.Mappings)

	for i := range out.Mappings {
		out.Mappings[i].Namer = cloneNamer(out.Mappings[i].Namer)
		out.Mappings[i].DirectoryNamer = cloneNamer(out.Mappings[i].DirectoryNamer)
	}

	return &out
}

func cloneNamer(n *config.Namer) *config.Namer {
	if n == nil {
		return nil
	}

	return &config.Namer{Service: n.Service, Options: maps.Clone(n.Options)}
}
