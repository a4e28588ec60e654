package config

import (
	"slices"
	"strings"

	"uploadwire/internal/common"
)

// Supported persistence drivers with built-in listener templates.
const (
	DriverORM     = "orm"
	DriverMongoDB = "mongodb"
	DriverPHPCR   = "phpcr"
	DriverPropel  = "propel"
)

// KnownDrivers lists the drivers with built-in templates, sorted.
var KnownDrivers = []string{DriverMongoDB, DriverORM, DriverPHPCR, DriverPropel}

// IsKnownDriver reports whether d has built-in templates.
func IsKnownDriver(d string) bool {
	return slices.Contains(KnownDrivers, d)
}

// Built-in storage backends. Gaufrette and Flysystem pull in their own
// service templates.
const (
	StorageFileSystem = "file_system"
	StorageGaufrette  = "gaufrette"
	StorageFlysystem  = "flysystem"
)

// Config is the root of an uploader configuration file.
type Config struct {
	// DBDriver is the default driver for mappings that declare none.
	DBDriver string `yaml:"db_driver" validate:"required"`
	// Storage selects the storage backend.
	Storage Reference `yaml:"storage"`
	// Twig registers the template extension services.
	Twig bool `yaml:"twig"`
	// DefaultFilenameAttributeSuffix is appended to a file property name to
	// find the property holding its file name.
	DefaultFilenameAttributeSuffix string `yaml:"default_filename_attribute_suffix"`

	Metadata Metadata `yaml:"metadata"`
	Mappings Mappings `yaml:"mappings" validate:"dive"`
}

// Metadata configures where mapping metadata is read from and how it is cached.
type Metadata struct {
	Cache         CacheSelector `yaml:"cache"`
	AutoDetection bool          `yaml:"auto_detection"`
	FileCache     FileCache     `yaml:"file_cache"`
	Directories   []Directory   `yaml:"directories,omitempty" validate:"dive"`
}

// FileCache configures the file-backed metadata cache.
type FileCache struct {
	// Dir may contain %parameter% placeholders.
	Dir string `yaml:"dir"`
}

// Directory is an explicitly configured metadata directory.
type Directory struct {
	// Path is a filesystem path or "@Module/relative/path".
	Path string `yaml:"path" validate:"required"`
	// NamespacePrefix is the type namespace whose metadata lives in Path.
	NamespacePrefix string `yaml:"namespace_prefix" validate:"required"`
}

// Mapping is one named upload configuration.
type Mapping struct {
	// Name is the mapping's key under "mappings".
	Name string `yaml:"-" validate:"required"`

	URIPrefix         string `yaml:"uri_prefix"`
	UploadDestination string `yaml:"upload_destination" validate:"required"`

	Namer          *Namer `yaml:"namer,omitempty"`
	DirectoryNamer *Namer `yaml:"directory_namer,omitempty"`

	// DBDriver is empty when the mapping defers to Config.DBDriver.
	DBDriver string `yaml:"db_driver,omitempty"`

	InjectOnLoad   bool `yaml:"inject_on_load"`
	DeleteOnUpdate bool `yaml:"delete_on_update"`
	DeleteOnRemove bool `yaml:"delete_on_remove"`
}

// HasNamerService reports whether the mapping names a custom namer service.
func (m *Mapping) HasNamerService() bool {
	return m.Namer != nil && m.Namer.Service != ""
}

// Namer references a naming service and the options to configure it with.
type Namer struct {
	Service string         `yaml:"service"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Mappings is the ordered list of mappings, in declaration order.
type Mappings []Mapping

// Get returns the mapping named name.
func (ms Mappings) Get(name string) (*Mapping, bool) {
	for i := range ms {
		if ms[i].Name == name {
			return &ms[i], true
		}
	}

	return nil, false
}

// Names returns the mapping names in order.
func (ms Mappings) Names() []string {
	names := make([]string, len(ms))
	for i := range ms {
		names[i] = ms[i].Name
	}

	return names
}

// Reference is a value that either names a built-in component (Literal) or
// points at an existing service (External, written "@id").
type Reference struct {
	Name     string `validate:"required"`
	External bool
}

// ParseReference parses the "@id" convention.
func ParseReference(s string) Reference {
	if id, ok := strings.CutPrefix(s, "@"); ok {
		return Reference{Name: id, External: true}
	}

	return Reference{Name: s}
}

// Literal returns a reference to a built-in component.
func Literal(name string) Reference {
	return Reference{Name: name}
}

// External returns a reference to an existing service.
func External(id string) Reference {
	return Reference{Name: id, External: true}
}

// String renders the reference back in configuration form.
func (r Reference) String() string {
	if r.External {
		return "@" + r.Name
	}

	return r.Name
}

// CacheKind selects the metadata cache implementation.
type CacheKind int

const (
	_ CacheKind = iota // zero value is invalid

	CacheNone
	CacheFile
	CacheExternal
)

// String returns the configuration keyword for the kind.
func (k CacheKind) String() string {
	switch k {
	case CacheNone:
		return "none"
	case CacheFile:
		return "file"
	case CacheExternal:
		return "service"
	default:
		return common.UnknownStr
	}
}

// CacheSelector is the parsed "metadata.cache" value.
type CacheSelector struct {
	Kind CacheKind
	// Ref is the service id for CacheExternal.
	Ref string
}

// ParseCacheSelector parses "none", "file" or a service id (an optional
// leading '@' is accepted and dropped).
func ParseCacheSelector(s string) CacheSelector {
	switch s {
	case "none":
		return CacheSelector{Kind: CacheNone}
	case "file":
		return CacheSelector{Kind: CacheFile}
	default:
		return CacheSelector{Kind: CacheExternal, Ref: strings.TrimPrefix(s, "@")}
	}
}

// String renders the selector back in configuration form.
func (c CacheSelector) String() string {
	if c.Kind == CacheExternal {
		return c.Ref
	}

	return c.Kind.String()
}
