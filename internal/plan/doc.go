// Package plan resolves an uploader configuration into a Plan: the ordered
// registry instructions that wire storage, metadata, caching, namers and
// per-mapping listeners.
//
// Resolution pipeline:
//  1. Load the service files the configuration selects
//  2. Default each mapping's driver to the global one
//  3. Alias the storage backend
//  4. Collect metadata directories (auto-detected, then explicit)
//  5. Configure the metadata cache
//  6. Decorate namer services per mapping
//  7. Decorate listener templates per mapping and enabled behavior
//  8. Publish the suffix and mapping parameters
//
// Nothing touches the registry until Plan.Apply. The only side effect of
// Resolve is creating the file cache directory, done after every other
// check has passed.
package plan
