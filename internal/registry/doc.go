// Package registry provides the service registry that uploader wiring is
// written into.
//
// A registry holds three kinds of entries, all keyed by string:
//
//   - definitions: how to build a service (class, arguments, tags, calls).
//     A definition may decorate a parent (template) definition and replace
//     some of its arguments by index.
//   - aliases: an alternate id resolving to another definition or alias.
//   - parameters: named scalar or structured values. String values can be
//     interpolated into other strings with the %name% placeholder syntax.
//
// Registry is the mutating interface used to commit a resolved plan;
// Reader is the read-only view resolution runs against. Container is the
// in-memory implementation of both.
//
// Nothing is checked for dangling references when entries are written.
// Container.Validate performs that pass once wiring is complete, the way a
// host container would at build time.
package registry
