package services

import "fmt"

// Prefix namespaces every uploader service and parameter id.
const Prefix = "uploader"

// Well-known service ids.
const (
	IDStorage             = Prefix + ".storage"
	IDAdapter             = Prefix + ".adapter"
	IDMetadataFileLocator = Prefix + ".metadata.file_locator"
	IDMetadataCache       = Prefix + ".metadata.cache"
	IDMetadataFileCache   = Prefix + ".metadata.cache.file_cache"
	IDMetadataDriver      = Prefix + ".metadata.driver"
	IDMetadataFactory     = Prefix + ".metadata_factory"
	IDMetadataReader      = Prefix + ".metadata_reader"
	IDMappingFactory      = Prefix + ".property_mapping_factory"
	IDFileInjector        = Prefix + ".file_injector"
	IDUploadHandler       = Prefix + ".upload_handler"
	IDDownloadHandler     = Prefix + ".download_handler"
	IDUploaderHelper      = Prefix + ".templating.helper.uploader_helper"
	IDTwigExtension       = Prefix + ".twig.extension"
	IDNamerUniqid         = Prefix + ".namer_uniqid"
	IDNamerOrigname       = Prefix + ".namer_origname"
	IDNamerProperty       = Prefix + ".namer_property"
	IDNamerHash           = Prefix + ".namer_hash"
	IDDirectoryNamerSub   = Prefix + ".directory_namer_subdir"
)

// Parameter names set by wiring.
const (
	ParamFilenameSuffix = Prefix + ".default_filename_attribute_suffix"
	ParamMappings       = Prefix + ".mappings"
)

// StorageID returns the id of the built-in storage backend name.
func StorageID(name string) string {
	return IDStorage + "." + name
}

// AdapterID returns the id of the persistence adapter for driver.
func AdapterID(driver string) string {
	return IDAdapter + "." + driver
}

// ListenerID returns "uploader.listener.<behavior>.<suffix>", where suffix is
// a driver for templates and a mapping name for decorated listeners.
func ListenerID(b Behavior, suffix string) string {
	return fmt.Sprintf("%s.listener.%s.%s", Prefix, b, suffix)
}

// NamerID returns the per-mapping id decorating the namer base.
func NamerID(base, mapping string) string {
	return base + "." + mapping
}
