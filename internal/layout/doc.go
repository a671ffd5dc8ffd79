// Package layout holds the fixed link-layout tables: the in-tree search-path
// suffixes, the static component archives in dependency order, and the
// setting names the emitter requires. Keeping these as explicit ordered data
// makes the link-order invariant visible and testable in one place.
package layout
