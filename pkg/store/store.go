// Package store defines the configuration-store abstraction used by the
// container cache and MRU resolution engines.
//
// A Store is a read-only view of a hierarchical key/value store addressed by
// backslash-separated paths that carry an explicit hive prefix, for example
// "HKCU\Software\Microsoft\Office". On Windows the store is backed by the
// registry; everywhere else the platform store reports nothing exists, which
// keeps resolution on its deterministic fallback ladder.
//
// Store implementations never return errors: an absent or unreadable path
// behaves exactly like an empty one. Partial store unavailability must not
// block resolution for applications whose data is present.
package store

import "strings"

// Child is one immediate subkey of a store path.
type Child struct {
	// Leaf is the subkey's own name.
	Leaf string

	// FullPath is the hive-prefixed path of the subkey.
	FullPath string
}

// Value is one named value under a store path.
type Value struct {
	Name string
	Data string
}

// Store enumerates a hierarchical configuration store.
//
// Implementations must be safe for repeated calls within a single-threaded
// run; no concurrency guarantees are required.
type Store interface {
	// KeyExists reports whether path names an existing key.
	KeyExists(path string) bool

	// Children returns the immediate subkeys of path in the store's native
	// enumeration order. Absent or unreadable paths yield an empty slice.
	Children(path string) []Child

	// Values returns the named string values under path.
	// Absent or unreadable paths yield an empty slice.
	Values(path string) []Value

	// Value reads a single named string value under path.
	Value(path, name string) (string, bool)
}

// JoinKey joins path segments with the store separator.
func JoinKey(parts ...string) string {
	return strings.Join(parts, `\`)
}

// SplitHive splits a hive-prefixed path into its hive token and the remainder.
// Paths without a separator are treated as a bare hive.
func SplitHive(path string) (hive, rest string) {
	hive, rest, found := strings.Cut(path, `\`)
	if !found {
		return path, ""
	}
	return hive, rest
}

// EqualPath compares two store paths case-insensitively.
func EqualPath(a, b string) bool {
	return strings.EqualFold(a, b)
}
