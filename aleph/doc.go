// Package aleph provides mutable, heap-allocated UTF-8 string objects
// with full Unicode semantics.
//
// # Overview
//
// A String is a growable byte buffer that is guaranteed to hold a valid
// UTF-8 sequence at every externally visible moment, together with cached
// length metadata: the byte length, the code point length, and the
// allocated capacity. The buffer is always NUL-terminated so the raw
// bytes interoperate with any interface expecting C-style UTF-8.
//
// # Key Concepts
//
// The same text can be addressed three ways:
//
//   - byte offset: the fast path; all mutators bottom out here
//   - code point index: the i-th Unicode scalar value
//   - grapheme cluster index: the i-th user-perceived character (UAX #29)
//
// Byte-offset operations are O(1) to locate; index-based operations walk
// the buffer (O(n)) and then defer to the offset variant. Functions with
// a G prefix address grapheme clusters.
//
// # Basic Usage
//
//	s := aleph.New("Café")
//	s.Len()   // 4 code points
//	s.Size()  // 5 bytes
//	s.CatString(" au lait").ToUpper()
//
// Mutators modify the receiver in place, growing the buffer as needed,
// and return it so that calls chain. All exported methods are safe on a
// nil receiver and propagate nil, so a chain never has to check
// intermediate results.
//
// # Unicode Operations
//
// Beyond byte-level editing the package implements the Unicode algorithms
// a correct string type needs: strict UTF-8 validation, extended grapheme
// cluster segmentation (UAX #29, in package segment), full and simple
// case mapping and case folding including the context-sensitive final
// sigma rule, and normalization to the four standard forms with
// quick-check (UAX #15).
//
// Case-insensitive search and comparison operate on full case folds
// computed on the fly; no intermediate folded copy is materialized.
//
// # Errors and Contracts
//
// Recoverable failures, such as malformed UTF-8 presented to a validating
// constructor or to Sync, are returned as errors wrapping ErrInvalidUTF8.
// Programming errors (a byte offset that does not start a code point, a
// code point outside the codespace) panic, mirroring the contract
// assertions of the C original this package descends from.
//
// # Concurrency
//
// A String is single-threaded: it may be moved between goroutines but
// must not be mutated concurrently. Read-only access from multiple
// goroutines is safe while no goroutine mutates. The Unicode property
// tables are immutable process-wide state and are always safe to share.
package aleph
