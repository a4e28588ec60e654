package registry

// Reader is the read-only view of a registry that resolution runs against.
type Reader interface {
	// HasDefinition reports whether id names a definition (aliases excluded).
	HasDefinition(id string) bool
	// HasAlias reports whether id names an alias.
	HasAlias(id string) bool
	// Definition returns a copy of the definition registered under id.
	Definition(id string) (*Definition, bool)
	// IDs returns all definition ids, sorted.
	IDs() []string
	// Parameter returns the parameter registered under name.
	Parameter(name string) (any, bool)
	// ResolveString replaces %name% placeholders in s with parameter values.
	ResolveString(s string) (string, error)
}

// Registry is a mutable service registry.
type Registry interface {
	Reader

	// Define registers def under id, replacing any definition or alias with
	// that id.
	Define(id string, def *Definition) error
	// Alias registers an alias under id, replacing any definition with that id.
	Alias(id string, alias Alias) error
	// RemoveAlias drops the alias registered under id, if any.
	RemoveAlias(id string)
	// ReplaceArgument replaces argument index of the definition id.
	ReplaceArgument(id string, index int, value any) error
	// AddTag tags the definition id.
	AddTag(id string, tag Tag) error
	// SetParameter registers a parameter value.
	SetParameter(name string, value any)
}
