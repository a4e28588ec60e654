package registry

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
)

// Container is an in-memory Registry. It is safe for concurrent use.
type Container struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
	aliases     map[string]Alias
	parameters  map[string]any
}

var _ Registry = (*Container)(nil)

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		definitions: make(map[string]*Definition),
		aliases:     make(map[string]Alias),
		parameters:  make(map[string]any),
	}
}

// Define implements Registry. The container keeps its own copy of def.
func (c *Container) Define(id string, def *Definition) error {
	if id == "" {
		return fmt.Errorf("cannot define a service with an empty id")
	}

	if def == nil {
		return fmt.Errorf("cannot define service %q: nil definition", id)
	}

	if def.Parent == id {
		return fmt.Errorf("%w: service %q decorates itself", ErrCircularReference, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.aliases, id)
	c.definitions[id] = def.Clone()

	return nil
}

// Alias implements Registry.
func (c *Container) Alias(id string, alias Alias) error {
	if id == "" || alias.Target == "" {
		return fmt.Errorf("alias %q -> %q: id and target are required", id, alias.Target)
	}

	if id == alias.Target {
		return fmt.Errorf("%w: alias %q points to itself", ErrCircularReference, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.definitions, id)
	c.aliases[id] = alias

	return nil
}

// RemoveAlias implements Registry.
func (c *Container) RemoveAlias(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.aliases, id)
}

// ReplaceArgument implements Registry.
func (c *Container) ReplaceArgument(id string, index int, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	def, ok := c.definitions[id]
	if !ok {
		return fmt.Errorf("replace argument %d of %q: %w", index, id, ErrServiceNotFound)
	}

	if err := def.ReplaceArgument(index, value); err != nil {
		return fmt.Errorf("replace argument of %q: %w", id, err)
	}

	return nil
}

// AddTag implements Registry.
func (c *Container) AddTag(id string, tag Tag) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	def, ok := c.definitions[id]
	if !ok {
		return fmt.Errorf("tag %q on %q: %w", tag.Name, id, ErrServiceNotFound)
	}

	def.AddTag(tag.Name, maps.Clone(tag.Attributes))

	return nil
}

// SetParameter implements Registry.
func (c *Container) SetParameter(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.parameters[name] = value
}

// HasDefinition implements Reader.
func (c *Container) HasDefinition(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.definitions[id]

	return ok
}

// HasAlias implements Reader.
func (c *Container) HasAlias(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.aliases[id]

	return ok
}

// Has reports whether id names a definition or an alias.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.has(id)
}

func (c *Container) has(id string) bool {
	if _, ok := c.definitions[id]; ok {
		return true
	}

	_, ok := c.aliases[id]

	return ok
}

// Definition implements Reader.
func (c *Container) Definition(id string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.definitions[id]
	if !ok {
		return nil, false
	}

	return def.Clone(), true
}

// AliasOf returns the alias registered under id.
func (c *Container) AliasOf(id string) (Alias, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.aliases[id]

	return a, ok
}

// Parameter implements Reader.
func (c *Container) Parameter(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.parameters[name]

	return v, ok
}

// IDs returns all definition ids, sorted.
func (c *Container) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.definitions))
}

// Aliases returns a copy of all aliases.
func (c *Container) Aliases() map[string]Alias {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.aliases)
}

// Parameters returns a copy of all parameters.
func (c *Container) Parameters() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.parameters)
}

// ResolveAlias follows alias chains from id to a definition id.
func (c *Container) ResolveAlias(id string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.resolveAlias(id)
}

func (c *Container) resolveAlias(id string) (string, error) {
	seen := map[string]struct{}{}

	for {
		if _, ok := c.definitions[id]; ok {
			return id, nil
		}

		a, ok := c.aliases[id]
		if !ok {
			return "", fmt.Errorf("%q: %w", id, ErrServiceNotFound)
		}

		if _, loop := seen[id]; loop {
			return "", fmt.Errorf("%w: alias chain through %q", ErrCircularReference, id)
		}

		seen[id] = struct{}{}
		id = a.Target
	}
}

// Effective returns the definition id flattened against its parent chain:
// parent arguments with the decorator's replacements applied, the nearest
// non-empty class, parent calls followed by the decorator's own. Tags are
// never inherited.
func (c *Container) Effective(id string) (*Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.effective(id, map[string]struct{}{})
}

func (c *Container) effective(id string, seen map[string]struct{}) (*Definition, error) {
	def, ok := c.definitions[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrServiceNotFound)
	}

	if !def.IsDecorator() {
		return def.Clone(), nil
	}

	if _, loop := seen[id]; loop {
		return nil, fmt.Errorf("%w: parent chain through %q", ErrCircularReference, id)
	}

	seen[id] = struct{}{}

	parent, err := c.effective(def.Parent, seen)
	if err != nil {
		return nil, fmt.Errorf("flatten %q: %w", id, err)
	}

	out := parent
	out.Parent = ""
	out.Abstract = def.Abstract
	out.Public = def.Public
	out.Tags = def.Clone().Tags

	if def.Class != "" {
		out.Class = def.Class
	}

	indexes := slices.Sorted(maps.Keys(def.Replacements))
	for _, i := range indexes {
		if i >= len(out.Arguments) {
			return nil, fmt.Errorf("flatten %q: %w: %d (parent %q has %d arguments)",
				id, ErrInvalidArgumentIndex, i, def.Parent, len(out.Arguments))
		}

		out.Arguments[i] = def.Replacements[i]
	}

	out.Calls = append(out.Calls, def.Clone().Calls...)

	return out, nil
}

// TaggedWith returns the ids of definitions carrying tag, highest priority
// first, ties ordered by id.
func (c *Container) TaggedWith(tag string) []TaggedService {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []TaggedService

	for id, def := range c.definitions {
		for _, t := range def.Tags {
			if t.Name != tag {
				continue
			}

			out = append(out, TaggedService{ID: id, Attributes: maps.Clone(t.Attributes), Priority: t.Priority()})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// Snapshot is a point-in-time copy of a container's contents.
type Snapshot struct {
	Parameters map[string]any         `yaml:"parameters,omitempty"`
	Aliases    map[string]Alias       `yaml:"aliases,omitempty"`
	Services   map[string]*Definition `yaml:"services,omitempty"`
}

// Snapshot copies the container's parameters, aliases and definitions.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Parameters: maps.Clone(c.parameters),
		Aliases:    maps.Clone(c.aliases),
		Services:   make(map[string]*Definition, len(c.definitions)),
	}

	for id, def := range c.definitions {
		s.Services[id] = def.Clone()
	}

	return s
}
