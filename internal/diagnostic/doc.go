// Package diagnostic provides structured errors and warnings produced while
// loading and validating an uploader configuration.
//
// Each diagnostic carries a stable code (e.g. "unknown_driver"), the config
// section it concerns (e.g. "mappings.avatar"), the offending key or value,
// and optional "did you mean" suggestions.
package diagnostic
