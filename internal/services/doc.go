// Package services holds the base service catalog that uploader wiring
// decorates: storage backends, persistence adapters, listener templates per
// driver and behavior, namers, the metadata stack, form types and handlers.
//
// Services are grouped into files. Every configuration loads the base files;
// the gaufrette and flysystem files are loaded only when selected as the
// storage backend, and the twig file only when twig integration is enabled.
//
// Listener templates are abstract: argument 0 (the mapping name) and
// argument 1 (the persistence adapter) are placeholders a per-mapping
// decorator replaces.
package services
