// Package match provides identifier normalization and Levenshtein similarity
// for naming heuristics and "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - TokenizeIdent, HasLeadingToken, LastToken: CamelCase role tests
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the most similar candidate above a threshold
package match
