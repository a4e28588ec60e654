package plan

import (
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"uploadwire/internal/config"
	"uploadwire/internal/match"
	"uploadwire/internal/registry"
	"uploadwire/internal/services"
)

// behaviorRule enables an optional behavior from a mapping flag.
type behaviorRule struct {
	behavior services.Behavior
	enabled  func(*config.Mapping) bool
	priority int
}

// Optional behaviors in registration order. Upload is always registered
// last with priority 0.
var optionalBehaviors = []behaviorRule{
	{services.BehaviorInject, func(m *config.Mapping) bool { return m.InjectOnLoad }, 0},
	{services.BehaviorClean, func(m *config.Mapping) bool { return m.DeleteOnUpdate }, 50},
	{services.BehaviorRemove, func(m *config.Mapping) bool { return m.DeleteOnRemove }, 0},
}

func behaviorsFor(m *config.Mapping) []behaviorRule {
	var out []behaviorRule

	for _, rule := range optionalBehaviors {
		if rule.enabled(m) {
			out = append(out, rule)
		}
	}

	return append(out, behaviorRule{behavior: services.BehaviorUpload})
}

// materializeNamers gives every mapping with a namer service its own
// decorated instance and points the mapping at it.
func (r *Resolver) materializeNamers(p *Plan) error {
	for i := range p.Config.Mappings {
		m := &p.Config.Mappings[i]
		if !m.HasNamerService() {
			continue
		}

		base := m.Namer.Service
		id := services.NamerID(base, m.Name)

		def := registry.NewDecorator(base)
		if len(m.Namer.Options) > 0 {
			def.AddCall("SetOptions", maps.Clone(m.Namer.Options))
		}

		p.define(id, def)
		p.Namers = append(p.Namers, NamerService{Mapping: m.Name, Base: base, ID: id})
		m.Namer.Service = id

		r.logger.Debug("namer decorated", zap.String("mapping", m.Name), zap.String("id", id))
	}

	return nil
}

// registerListeners decorates the driver's listener template for each
// enabled behavior of each mapping.
func (r *Resolver) registerListeners(p *Plan) error {
	// every template must exist before anything is emitted
	for i := range p.Config.Mappings {
		m := &p.Config.Mappings[i]

		for _, rule := range behaviorsFor(m) {
			tmpl := services.ListenerID(rule.behavior, m.DBDriver)
			if !r.has(p, tmpl) {
				available := r.availableDrivers(p)

				return &ConfigError{
					Err:         ErrUnknownDriver,
					Subject:     m.DBDriver,
					Mapping:     m.Name,
					Available:   available,
					Suggestions: match.Suggest(m.DBDriver, available),
				}
			}
		}
	}

	for i := range p.Config.Mappings {
		m := &p.Config.Mappings[i]

		for _, rule := range behaviorsFor(m) {
			r.registerListener(p, m, rule)
		}
	}

	return nil
}

// availableDrivers lists the drivers with an upload listener template in
// the loaded files or the reader, sorted.
func (r *Resolver) availableDrivers(p *Plan) []string {
	prefix := services.ListenerID(services.BehaviorUpload, "")

	var drivers []string

	for _, in := range p.Instructions {
		if in.Op == OpDefine && in.Definition != nil && in.Definition.Abstract && strings.HasPrefix(in.ID, prefix) {
			drivers = append(drivers, strings.TrimPrefix(in.ID, prefix))
		}
	}

	for _, id := range r.reader.IDs() {
		if !strings.HasPrefix(id, prefix) {
			continue
		}

		if def, ok := r.reader.Definition(id); ok && def.Abstract {
			drivers = append(drivers, strings.TrimPrefix(id, prefix))
		}
	}

	drivers = lo.Uniq(drivers)
	slices.Sort(drivers)

	return drivers
}

func (r *Resolver) registerListener(p *Plan, m *config.Mapping, rule behaviorRule) {
	driver := m.DBDriver
	l := Listener{
		ID:       services.ListenerID(rule.behavior, m.Name),
		Mapping:  m.Name,
		Behavior: rule.behavior,
		Driver:   driver,
		Template: services.ListenerID(rule.behavior, driver),
		Priority: rule.priority,
	}

	def := registry.NewDecorator(l.Template)
	// decorators accept any index
	_ = def.ReplaceArgument(0, m.Name)
	_ = def.ReplaceArgument(1, registry.Reference(services.AdapterID(driver)))

	p.define(l.ID, def)

	// drivers without an event system are dispatched without tags
	if tag, ok := services.EventSubscriberTags[driver]; ok {
		l.Tag = tag
		p.addTag(l.ID, registry.Tag{Name: tag, Attributes: map[string]any{"priority": rule.priority}})
	}

	p.Listeners = append(p.Listeners, l)

	r.logger.Debug("listener registered",
		zap.String("id", l.ID),
		zap.Stringer("behavior", l.Behavior),
		zap.String("driver", driver),
		zap.Int("priority", l.Priority),
	)
}

func (r *Resolver) setParameters(p *Plan) error {
	p.setParameter(services.ParamFilenameSuffix, p.Config.DefaultFilenameAttributeSuffix)
	p.setParameter(services.ParamMappings, MappingsParameter(p.Config.Mappings))

	return nil
}

// MappingsParameter renders resolved mappings as the generic map published
// under the mappings parameter, keyed by mapping name.
func MappingsParameter(ms config.Mappings) map[string]any {
	out := make(map[string]any, len(ms))

	for _, m := range ms {
		out[m.Name] = map[string]any{
			"uri_prefix":         m.URIPrefix,
			"upload_destination": m.UploadDestination,
			"namer":              namerParameter(m.Namer),
			"directory_namer":    namerParameter(m.DirectoryNamer),
			"db_driver":          m.DBDriver,
			"inject_on_load":     m.InjectOnLoad,
			"delete_on_update":   m.DeleteOnUpdate,
			"delete_on_remove":   m.DeleteOnRemove,
		}
	}

	return out
}

func namerParameter(n *config.Namer) any {
	if n == nil {
		return nil
	}

	out := map[string]any{"service": n.Service}
	if len(n.Options) > 0 {
		out["options"] = maps.Clone(n.Options)
	}

	return out
}
