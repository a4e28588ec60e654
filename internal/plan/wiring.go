package plan

import (
	"go.uber.org/zap"

	"uploadwire/internal/registry"
	"uploadwire/internal/services"
)

func (r *Resolver) loadFiles(p *Plan) error {
	p.Files = services.FilesFor(p.Config)

	for _, e := range r.catalog.Entries(p.Files...) {
		if e.Alias != nil {
			p.alias(e.ID, *e.Alias)
			continue
		}

		p.define(e.ID, e.Definition)
	}

	r.logger.Debug("service files loaded", zap.Any("files", p.Files))

	return nil
}

// defaultDrivers gives every mapping without a driver the global one.
// Explicit drivers are kept unchanged.
func (r *Resolver) defaultDrivers(p *Plan) error {
	for i := range p.Config.Mappings {
		m := &p.Config.Mappings[i]
		if m.DBDriver == "" {
			m.DBDriver = p.Config.DBDriver
		}
	}

	return nil
}

// resolveStorage aliases the storage id. An external reference is taken
// verbatim; its existence is checked when the registry is validated.
func (r *Resolver) resolveStorage(p *Plan) error {
	ref := p.Config.Storage

	p.Storage = services.StorageID(ref.Name)
	if ref.External {
		p.Storage = ref.Name
	}

	p.alias(services.IDStorage, registry.Alias{Target: p.Storage, Public: true})

	r.logger.Debug("storage aliased", zap.String("target", p.Storage), zap.Bool("external", ref.External))

	return nil
}
