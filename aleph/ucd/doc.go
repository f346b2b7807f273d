// Package ucd is the Unicode character database backing the aleph package.
//
// # Overview
//
// Every per-code-point property the library needs (general category,
// canonical combining class, grapheme-cluster-break class, normalization
// quick-check classes, canonical and compatibility decompositions, the
// composition pair table, simple and full case mappings, and block
// assignment) is served from a single two-stage trie, so a lookup is
// two array index operations regardless of the property.
//
// # Table construction
//
// The tables are process-wide immutable state built once, at program start,
// from the machine-readable UCD data already linked into every Go binary:
// the standard library's unicode range tables (categories, properties) and
// golang.org/x/text's normalization and casing tables (decompositions,
// combining classes, full case mappings). Properties Go does not carry,
// such as block ranges, the grapheme-break exception sets and
// Extended_Pictographic, are generated static tables in this package.
//
// The build paints per-code-point attributes into dense per-page arrays,
// deduplicates identical 256-entry pages, and emits the stage1/stage2
// index arrays plus a deduplicated property-row slice. This is the same
// shape a build-time UCD trie generator produces; doing it at init keeps
// the data in lockstep with the Go toolchain's Unicode version, which
// Version reports.
//
// # Concurrency
//
// All tables are immutable after init and safe to read from any goroutine
// without synchronization.
package ucd
