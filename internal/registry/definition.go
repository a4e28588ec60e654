package registry

import (
	"fmt"
	"maps"
	"slices"
)

// Reference is an argument value pointing at another service by id.
type Reference string

// String renders the reference in "@id" form.
func (r Reference) String() string {
	return "@" + string(r)
}

// MarshalYAML renders the reference in "@id" form.
func (r Reference) MarshalYAML() (any, error) {
	return r.String(), nil
}

// OptionalReference is a Reference that is dropped, rather than reported,
// when the target id is not registered.
type OptionalReference string

// String renders the reference in "@?id" form.
func (r OptionalReference) String() string {
	return "@?" + string(r)
}

// MarshalYAML renders the reference in "@?id" form.
func (r OptionalReference) MarshalYAML() (any, error) {
	return r.String(), nil
}

// Tag annotates a definition so collectors (event dispatchers, etc.) can
// find it. Attributes commonly carry a "priority".
type Tag struct {
	Name       string         `yaml:"name"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
}

// Priority returns the integer "priority" attribute, or 0.
func (t Tag) Priority() int {
	switch v := t.Attributes["priority"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Call is a method invoked on a service right after construction.
type Call struct {
	Method string `yaml:"method"`
	Args   []any  `yaml:"args,omitempty"`
}

// Definition describes how to build a service.
type Definition struct {
	// Class is the implementation name; empty means inherited from Parent.
	Class string `yaml:"class,omitempty"`
	// Parent is the id of the template this definition decorates.
	Parent string `yaml:"parent,omitempty"`
	// Abstract definitions are templates and are never built directly.
	Abstract bool `yaml:"abstract,omitempty"`
	// Public definitions may be fetched by id from outside the registry.
	Public bool `yaml:"public,omitempty"`
	// Arguments are the constructor arguments of a non-decorating definition.
	Arguments []any `yaml:"arguments,omitempty"`
	// Replacements override parent arguments by index on a decorating definition.
	Replacements map[int]any `yaml:"replacements,omitempty"`
	Tags         []Tag       `yaml:"tags,omitempty"`
	Calls        []Call      `yaml:"calls,omitempty"`
}

// NewDefinition returns a concrete definition of class with the given arguments.
func NewDefinition(class string, args ...any) *Definition {
	return &Definition{Class: class, Arguments: args}
}

// NewTemplate returns an abstract definition meant to be decorated.
func NewTemplate(class string, args ...any) *Definition {
	return &Definition{Class: class, Arguments: args, Abstract: true}
}

// NewDecorator returns a definition decorating parent.
func NewDecorator(parent string) *Definition {
	return &Definition{Parent: parent}
}

// IsDecorator reports whether d decorates a parent definition.
func (d *Definition) IsDecorator() bool {
	return d.Parent != ""
}

// ReplaceArgument sets argument index. On a decorator the replacement is
// recorded and applied against the parent's arguments when the definition
// is flattened; otherwise index must already exist.
func (d *Definition) ReplaceArgument(index int, value any) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidArgumentIndex, index)
	}

	if d.IsDecorator() {
		if d.Replacements == nil {
			d.Replacements = make(map[int]any)
		}

		d.Replacements[index] = value

		return nil
	}

	if index >= len(d.Arguments) {
		return fmt.Errorf("%w: %d (definition has %d arguments)", ErrInvalidArgumentIndex, index, len(d.Arguments))
	}

	d.Arguments[index] = value

	return nil
}

// AddTag appends a tag.
func (d *Definition) AddTag(name string, attrs map[string]any) *Definition {
	d.Tags = append(d.Tags, Tag{Name: name, Attributes: attrs})
	return d
}

// AddCall appends a method call.
func (d *Definition) AddCall(method string, args ...any) *Definition {
	d.Calls = append(d.Calls, Call{Method: method, Args: args})
	return d
}

// HasTag reports whether d carries a tag named name.
func (d *Definition) HasTag(name string) bool {
	return slices.ContainsFunc(d.Tags, func(t Tag) bool { return t.Name == name })
}

// Clone returns a copy of d that shares no slices or maps with it.
// Argument values themselves are copied shallowly.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}

	c := *d
	c.Arguments = slices.Clone(d.Arguments)
	c.Replacements = maps.Clone(d.Replacements)

	c.Tags = make([]Tag, len(d.Tags))
	for i, t := range d.Tags {
		c.Tags[i] = Tag{Name: t.Name, Attributes: maps.Clone(t.Attributes)}
	}

	c.Calls = make([]Call, len(d.Calls))
	for i, call := range d.Calls {
		c.Calls[i] = Call{Method: call.Method, Args: slices.Clone(call.Args)}
	}

	if len(c.Tags) == 0 {
		c.Tags = nil
	}

	if len(c.Calls) == 0 {
		c.Calls = nil
	}

	return &c
}

// Alias points an id at another definition or alias.
type Alias struct {
	Target string `yaml:"target"`
	Public bool   `yaml:"public,omitempty"`
}

// TaggedService is a definition id found by tag, with that tag's attributes.
type TaggedService struct {
	ID         string
	Attributes map[string]any
	Priority   int
}
