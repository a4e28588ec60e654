package services

import (
	"uploadwire/internal/config"
	"uploadwire/internal/registry"
)

// External services the optional storage backends depend on.
const (
	IDGaufretteFilesystemMap = "knp_gaufrette.filesystem_map"
	IDFlysystemMountManager  = "oneup_flysystem.mount_manager"
)

var adapterClasses = map[string]string{
	config.DriverORM:     "adapter.ORM",
	config.DriverMongoDB: "adapter.MongoDB",
	config.DriverPHPCR:   "adapter.PHPCR",
	config.DriverPropel:  "adapter.Propel",
}

var listenerClasses = map[Behavior]string{
	BehaviorInject: "listener.Inject",
	BehaviorClean:  "listener.Clean",
	BehaviorRemove: "listener.Remove",
	BehaviorUpload: "listener.Upload",
}

// listenerTemplate leaves the mapping name (0) and adapter (1) to decorators.
func listenerTemplate(b Behavior) *registry.Definition {
	return registry.NewTemplate(listenerClasses[b],
		nil,
		nil,
		registry.Reference(IDMetadataReader),
		registry.Reference(IDUploadHandler),
	)
}

// Default returns the built-in catalog covering every known driver.
func Default() *Catalog {
	c := NewCatalog()

	for _, d := range config.KnownDrivers {
		must(c.RegisterDriver(d, adapterClasses[d]))
	}

	def := func(f File, id string, d *registry.Definition) {
		must(c.Register(f, Entry{ID: id, Definition: d}))
	}

	def(FileStorage, StorageID(config.StorageFileSystem),
		registry.NewDefinition("storage.FileSystem", registry.Reference(IDMappingFactory)))

	def(FileGaufrette, StorageID(config.StorageGaufrette),
		registry.NewDefinition("storage.Gaufrette",
			registry.Reference(IDMappingFactory),
			registry.Reference(IDGaufretteFilesystemMap)))

	def(FileFlysystem, StorageID(config.StorageFlysystem),
		registry.NewDefinition("storage.Flysystem",
			registry.Reference(IDMappingFactory),
			registry.Reference(IDFlysystemMountManager)))

	def(FileInjector, IDFileInjector,
		registry.NewDefinition("injector.FileInjector", registry.Reference(IDStorage)))

	helper := registry.NewDefinition("templating.UploaderHelper", registry.Reference(IDStorage))
	helper.Public = true
	def(FileTemplating, IDUploaderHelper, helper)

	def(FileMapping, IDMetadataFileLocator,
		registry.NewDefinition("metadata.FileLocator", map[string]string{}))
	def(FileMapping, IDMetadataDriver,
		registry.NewDefinition("metadata.FileDriver", registry.Reference(IDMetadataFileLocator)))
	def(FileMapping, IDMetadataFileCache,
		registry.NewDefinition("metadata.FileCache", ""))
	must(c.Register(FileMapping, Entry{
		ID:    IDMetadataCache,
		Alias: &registry.Alias{Target: IDMetadataFileCache},
	}))
	def(FileMapping, IDMetadataFactory,
		registry.NewDefinition("metadata.Factory", registry.Reference(IDMetadataDriver)).
			AddCall("SetCache", registry.OptionalReference(IDMetadataCache)))
	def(FileMapping, IDMetadataReader,
		registry.NewDefinition("metadata.Reader", registry.Reference(IDMetadataFactory)))

	def(FileFactory, IDMappingFactory,
		registry.NewDefinition("mapping.PropertyMappingFactory",
			registry.Reference(IDMetadataReader),
			"%"+ParamMappings+"%",
			"%"+ParamFilenameSuffix+"%"))

	namer := func(id, class string) {
		d := registry.NewDefinition(class)
		d.Public = true
		def(FileNamer, id, d)
	}
	namer(IDNamerUniqid, "naming.UniqidNamer")
	namer(IDNamerOrigname, "naming.OrignameNamer")
	namer(IDNamerProperty, "naming.PropertyNamer")
	namer(IDNamerHash, "naming.HashNamer")
	namer(IDDirectoryNamerSub, "naming.SubdirDirectoryNamer")

	def(FileForm, Prefix+".form.type.file",
		registry.NewDefinition("form.FileType", registry.Reference(IDStorage), registry.Reference(IDUploadHandler)).
			AddTag("form.type", nil))
	def(FileForm, Prefix+".form.type.image",
		registry.NewDefinition("form.ImageType", registry.Reference(IDStorage), registry.Reference(IDUploadHandler)).
			AddTag("form.type", nil))

	def(FileHandler, IDUploadHandler,
		registry.NewDefinition("handler.UploadHandler",
			registry.Reference(IDMappingFactory),
			registry.Reference(IDStorage),
			registry.Reference(IDFileInjector)))
	download := registry.NewDefinition("handler.DownloadHandler",
		registry.Reference(IDMappingFactory),
		registry.Reference(IDStorage))
	download.Public = true
	def(FileHandler, IDDownloadHandler, download)

	def(FileTwig, IDTwigExtension,
		registry.NewDefinition("twig.UploaderExtension", registry.Reference(IDUploaderHelper)).
			AddTag("twig.extension", nil))

	return c
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
