// Package config provides the YAML schema, parsing, defaults and validation
// for uploader configuration.
//
// # Schema Overview
//
//	db_driver: orm                      # default driver for mappings that name none
//	storage: file_system                # backend name, or "@service_id"
//	twig: true                          # register the template extension
//	default_filename_attribute_suffix: _name
//	metadata:
//	  cache: file                       # none | file | service id
//	  auto_detection: true              # scan installed modules for metadata
//	  file_cache:
//	    dir: "%kernel.cache_dir%/uploader"
//	  directories:
//	    - path: "@AcmeUserBundle/Resources/config/uploads"
//	      namespace_prefix: 'Acme\UserBundle\Entity'
//	mappings:
//	  avatar:
//	    uri_prefix: /uploads/avatars
//	    upload_destination: "%kernel.root_dir%/../web/uploads/avatars"
//	    namer: uploader.namer_uniqid    # or {service: ..., options: {...}}
//	    directory_namer: ~
//	    db_driver: ~                    # falls back to the top-level db_driver
//	    inject_on_load: false
//	    delete_on_update: true
//	    delete_on_remove: true
//
// # References
//
// A value starting with '@' names an existing service rather than a built-in
// backend. That convention is parsed once, here, into Reference and
// CacheSelector values; nothing downstream inspects the '@' again.
//
// # Ordering
//
// Mappings keep the order they are declared in. Resolution walks them in that
// order, so the same file always produces the same wiring.
package config
