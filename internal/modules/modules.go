// Package modules describes the installed extension modules an uploader
// configuration may refer to: their ids, the namespace their mapped types
// live under, and where they are installed on disk.
package modules

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"uploadwire/internal/common"
)

// MetadataSubdir is where a module keeps its uploader mapping metadata,
// relative to its install directory.
const MetadataSubdir = "Resources/config/uploader"

// Module is one installed module.
type Module struct {
	// Name is the id used in "@Name/..." path shorthand.
	Name string `yaml:"name"`
	// Namespace is the prefix of the types the module declares. Defaults to Name.
	Namespace string `yaml:"namespace,omitempty"`
	// Dir is the install directory.
	Dir string `yaml:"dir"`
}

// MetadataDir returns the conventional metadata directory of m.
func (m Module) MetadataDir() string {
	return path.Join(common.ToSlash(m.Dir), MetadataSubdir)
}

// Table is the ordered set of installed modules. Order is significant: it is
// the order in which auto-detected metadata directories are collected.
type Table struct {
	modules []Module
	index   map[string]int
}

// NewTable builds a table, rejecting empty or duplicate names.
func NewTable(mods ...Module) (*Table, error) {
	t := &Table{index: make(map[string]int, len(mods))}

	for _, m := range mods {
		if err := t.Add(m); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Add appends m to the table.
func (t *Table) Add(m Module) error {
	if m.Name == "" {
		return fmt.Errorf("module name is required (dir %q)", m.Dir)
	}

	if m.Dir == "" {
		return fmt.Errorf("module %q: dir is required", m.Name)
	}

	if _, dup := t.index[m.Name]; dup {
		return fmt.Errorf("module %q registered twice", m.Name)
	}

	if m.Namespace == "" {
		m.Namespace = m.Name
	}

	if t.index == nil {
		t.index = make(map[string]int)
	}

	t.index[m.Name] = len(t.modules)
	t.modules = append(t.modules, m)

	return nil
}

// Lookup returns the module registered as name.
func (t *Table) Lookup(name string) (Module, bool) {
	if t == nil {
		return Module{}, false
	}

	i, ok := t.index[name]
	if !ok {
		return Module{}, false
	}

	return t.modules[i], true
}

// All returns the modules in registration order.
func (t *Table) All() []Module {
	if t == nil {
		return nil
	}

	out := make([]Module, len(t.modules))
	copy(out, t.modules)

	return out
}

// Names returns module names in registration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	names := make([]string, len(t.modules))
	for i, m := range t.modules {
		names[i] = m.Name
	}

	return names
}

// Len returns the number of modules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.modules)
}

type tableFile struct {
	Modules []Module `yaml:"modules"`
}

// LoadFile reads a YAML module table:
//
//	modules:
//	  - name: AcmeUserBundle
//	    namespace: Acme\UserBundle
//	    dir: /srv/app/src/Acme/UserBundle
func LoadFile(p string) (*Table, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read module table %s: %w", p, err)
	}

	return Parse(data)
}

// Parse parses a YAML module table.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse module table YAML: %w", err)
	}

	return NewTable(f.Modules...)
}

// ParseFlag parses the "Name=dir" command-line form. The namespace defaults
// to the name.
func ParseFlag(s string) (Module, error) {
	name, dir, ok := strings.Cut(s, "=")
	if !ok || name == "" || dir == "" {
		return Module{}, fmt.Errorf("invalid module %q: expected Name=dir", s)
	}

	return Module{Name: name, Namespace: name, Dir: dir}, nil
}
