package plan

import (
	"uploadwire/internal/config"
	"uploadwire/internal/diagnostic"
	"uploadwire/internal/registry"
	"uploadwire/internal/services"
)

//go:generate go tool stringer -type=Op -linecomment -output=op_string.go

// Op is a registry mutation.
type Op int

const (
	_ Op = iota // zero value is invalid

	OpDefine          // define
	OpAlias           // alias
	OpRemoveAlias     // remove-alias
	OpReplaceArgument // replace-argument
	OpAddTag          // add-tag
	OpSetParameter    // set-parameter
)

// Instruction is one buffered registry mutation. Which fields are set
// depends on Op; for OpSetParameter ID is the parameter name.
type Instruction struct {
	Op         Op
	ID         string
	Definition *registry.Definition
	Alias      registry.Alias
	Index      int
	Value      any
	Tag        registry.Tag
}

// Plan is the result of resolving a configuration.
type Plan struct {
	// Config is the resolved configuration: drivers defaulted, namer
	// services rewritten to their per-mapping ids.
	Config *config.Config
	// Files are the service files loaded, in load order.
	Files []services.File
	// Storage is the id the storage alias points at.
	Storage string
	// Directories maps namespace prefixes to metadata directories.
	Directories map[string]string
	Cache       CacheStrategy
	Namers      []NamerService
	Listeners   []Listener
	// Instructions are applied in order by Apply.
	Instructions []Instruction
	// Diagnostics holds non-fatal findings.
	Diagnostics diagnostic.Diagnostics
}

// CacheStrategy records how the metadata cache was configured.
type CacheStrategy struct {
	Kind config.CacheKind
	// Dir is the configured file cache directory, placeholders intact.
	Dir string
	// ResolvedDir is Dir with placeholders replaced.
	ResolvedDir string
	// Created is true when resolution created ResolvedDir.
	Created bool
	// Service is the cache service id for config.CacheExternal.
	Service string
}

// NamerService is a namer decorated for one mapping.
type NamerService struct {
	Mapping string
	Base    string
	ID      string
}

// Listener is a listener decorated for one mapping and behavior.
type Listener struct {
	ID       string
	Mapping  string
	Behavior services.Behavior
	Driver   string
	Template string
	// Tag is empty for drivers without event subscribers.
	Tag      string
	Priority int
}

// ListenersFor returns the listeners of mapping, in registration order.
func (p *Plan) ListenersFor(mapping string) []Listener {
	var out []Listener

	for _, l := range p.Listeners {
		if l.Mapping == mapping {
			out = append(out, l)
		}
	}

	return out
}

// Defines returns the ids the plan defines, in order.
func (p *Plan) Defines() []string {
	var ids []string

	for _, in := range p.Instructions {
		if in.Op == OpDefine {
			ids = append(ids, in.ID)
		}
	}

	return ids
}

func (p *Plan) define(id string, def *registry.Definition) {
	p.Instructions = append(p.Instructions, Instruction{Op: OpDefine, ID: id, Definition: def})
}

func (p *Plan) alias(id string, a registry.Alias) {
	p.Instructions = append(p.Instructions, Instruction{Op: OpAlias, ID: id, Alias: a})
}

func (p *Plan) removeAlias(id string) {
	p.Instructions = append(p.Instructions, Instruction{Op: OpRemoveAlias, ID: id})
}

func (p *Plan) replaceArgument(id string, index int, value any) {
	p.Instructions = append(p.Instructions, Instruction{Op: OpReplaceArgument, ID: id, Index: index, Value: value})
}

func (p *Plan) setParameter(name string, value any) {
	p.Instructions = append(p.Instructions, Instruction{Op: OpSetParameter, ID: name, Value: value})
}

func (p *Plan) addTag(id string, tag registry.Tag) {
	p.Instructions = append(p.Instructions, Instruction{Op: OpAddTag, ID: id, Tag: tag})
}
