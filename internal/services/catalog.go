package services

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"uploadwire/internal/config"
	"uploadwire/internal/registry"
)

// File names a group of service templates loaded together.
type File string

// Service files.
const (
	FileAdapter    File = "adapter"
	FileListener   File = "listener"
	FileStorage    File = "storage"
	FileInjector   File = "injector"
	FileTemplating File = "templating"
	FileMapping    File = "mapping"
	FileFactory    File = "factory"
	FileNamer      File = "namer"
	FileForm       File = "form"
	FileHandler    File = "handler"
	FileGaufrette  File = "gaufrette"
	FileFlysystem  File = "flysystem"
	FileTwig       File = "twig"
)

// BaseFiles are loaded for every configuration.
var BaseFiles = []File{
	FileAdapter, FileListener, FileStorage, FileInjector, FileTemplating,
	FileMapping, FileFactory, FileNamer, FileForm, FileHandler,
}

// Entry is one catalog item: a definition or an alias registered under ID.
type Entry struct {
	ID         string
	Definition *registry.Definition
	Alias      *registry.Alias
}

// Catalog holds service templates grouped by file.
type Catalog struct {
	files map[File][]Entry
	ids   map[string]File
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		files: make(map[File][]Entry),
		ids:   make(map[string]File),
	}
}

// Register adds e to file. Ids are unique across the catalog.
func (c *Catalog) Register(file File, e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("catalog entry in %q has no id", file)
	}

	if (e.Definition == nil) == (e.Alias == nil) {
		return fmt.Errorf("catalog entry %q must hold exactly one of definition or alias", e.ID)
	}

	if prev, ok := c.ids[e.ID]; ok {
		return fmt.Errorf("catalog entry %q already registered in %q", e.ID, prev)
	}

	c.files[file] = append(c.files[file], e)
	c.ids[e.ID] = file

	return nil
}

// RegisterDriver adds the persistence adapter and the abstract listener
// templates of every behavior for driver.
func (c *Catalog) RegisterDriver(driver, adapterClass string) error {
	err := c.Register(FileAdapter, Entry{
		ID:         AdapterID(driver),
		Definition: registry.NewDefinition(adapterClass),
	})
	if err != nil {
		return err
	}

	for _, b := range Behaviors {
		err := c.Register(FileListener, Entry{
			ID:         ListenerID(b, driver),
			Definition: listenerTemplate(b),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Has reports whether id is registered in any file.
func (c *Catalog) Has(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Entries returns copies of the entries of files, in file order then
// registration order. Unknown files contribute nothing.
func (c *Catalog) Entries(files ...File) []Entry {
	return lo.FlatMap(lo.Uniq(files), func(f File, _ int) []Entry {
		return lo.Map(c.files[f], func(e Entry, _ int) Entry {
			out := Entry{ID: e.ID, Definition: e.Definition.Clone()}
			if e.Alias != nil {
				a := *e.Alias
				out.Alias = &a
			}

			return out
		})
	})
}

// IDs returns the sorted ids registered in files.
func (c *Catalog) IDs(files ...File) []string {
	ids := lo.Map(c.Entries(files...), func(e Entry, _ int) string { return e.ID })
	slices.Sort(ids)

	return ids
}

// FilesFor returns the files cfg loads: the base files, the gaufrette or
// flysystem file when that backend is selected by name, and twig when enabled.
func FilesFor(cfg *config.Config) []File {
	files := slices.Clone(BaseFiles)

	if !cfg.Storage.External {
		switch cfg.Storage.Name {
		case config.StorageGaufrette:
			files = append(files, FileGaufrette)
		case config.StorageFlysystem:
			files = append(files, FileFlysystem)
		}
	}

	if cfg.Twig {
		files = append(files, FileTwig)
	}

	return files
}
