// Package match provides fuzzy name matching used to produce "did you mean"
// suggestions when a configuration references an unknown module, driver or
// service.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "Acme_Bundle" ~ "acmeBundle"
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
