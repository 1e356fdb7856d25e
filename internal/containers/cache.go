// Package containers discovers authentication containers in the
// configuration store and caches them for lookup.
//
// Office keeps one "Recent Templates" key per application and version root;
// signed-in identities appear underneath it as subkeys whose names carry a
// backend prefix ("ADAL_" for the enterprise directory, "LIVEID_" for the
// consumer identity service). A cache build scans every version root for the
// requested applications, classifies the subkeys it finds, and records a
// deduplicated sequence of entries in discovery order.
//
// Caches are rebuilt from scratch on every lookup; nothing persists between
// calls.
package containers

import (
	"strings"

	"github.com/systmms/officemru/internal/office"
	"github.com/systmms/officemru/pkg/store"
)

// Kind classifies a container by its authentication backend.
type Kind int

const (
	// EnterpriseDirectory marks containers created by the enterprise
	// directory service sign-in ("ADAL_" prefix).
	EnterpriseDirectory Kind = iota

	// ConsumerIdentity marks containers created by the consumer identity
	// service sign-in ("LIVEID_" prefix).
	ConsumerIdentity
)

// String returns the backend's display name.
func (k Kind) String() string {
	switch k {
	case EnterpriseDirectory:
		return "enterprise-directory"
	case ConsumerIdentity:
		return "consumer-identity"
	default:
		return "unknown"
	}
}

const (
	adalPrefix   = "ADAL_"
	liveIDPrefix = "LIVEID_"
)

// ClassifyLeaf classifies a subkey leaf name by its backend prefix.
// Matching is case-insensitive. Leaves matching neither prefix are not
// containers and report ok=false.
func ClassifyLeaf(leaf string) (Kind, bool) {
	upper := strings.ToUpper(leaf)
	switch {
	case strings.HasPrefix(upper, adalPrefix):
		return EnterpriseDirectory, true
	case strings.HasPrefix(upper, liveIDPrefix):
		return ConsumerIdentity, true
	default:
		return 0, false
	}
}

// Entry is one discovered authentication container. Entries are append-only;
// they are never mutated after registration.
type Entry struct {
	App  office.App
	Kind Kind
	ID   string
	Path string
}

// Filter selects the applications a scan covers.
type Filter struct {
	app office.App
	set bool
}

// All covers every known application in fixed scan order.
func All() Filter { return Filter{} }

// Only restricts a scan to a single application.
func Only(app office.App) Filter { return Filter{app: app, set: true} }

// worklist returns the applications to scan, in scan order.
func (f Filter) worklist() []office.App {
	if f.set {
		return []office.App{f.app}
	}
	return office.Apps
}

// matches reports whether an entry's application passes the filter.
func (f Filter) matches(app office.App) bool {
	return !f.set || f.app == app
}

// Cache is an ordered, deduplicated sequence of container entries built by a
// single scan. The primary entry is the first one registered.
type Cache struct {
	entries []Entry
	primary int // index into entries, -1 when the build found nothing
}

// Build scans every version root (newest first) for the filtered
// applications and returns a fresh cache. Missing or unreadable store paths
// contribute nothing; Build never fails.
func Build(st store.Store, f Filter) *Cache {
	c := &Cache{primary: -1}
	for _, version := range office.Versions {
		for _, app := range f.worklist() {
			base := office.RecentTemplatesKey(version, app)
			for _, child := range st.Children(base) {
				kind, ok := ClassifyLeaf(child.Leaf)
				if !ok {
					continue
				}
				c.register(app, kind, child.Leaf, child.FullPath)
			}
		}
	}
	return c
}

// register appends a new entry unless one with the same id and path (compared
// case-insensitively) is already cached. The first registration of a build
// becomes the primary entry.
func (c *Cache) register(app office.App, kind Kind, id, path string) {
	for _, e := range c.entries {
		if strings.EqualFold(e.ID, id) && store.EqualPath(e.Path, path) {
			return
		}
	}
	c.entries = append(c.entries, Entry{App: app, Kind: kind, ID: id, Path: path})
	if c.primary < 0 {
		c.primary = len(c.entries) - 1
	}
}

// Entries returns the cached entries in discovery order.
func (c *Cache) Entries() []Entry {
	return c.entries
}

// Primary returns the first entry registered during the build.
func (c *Cache) Primary() (Entry, bool) {
	if c.primary < 0 {
		return Entry{}, false
	}
	return c.entries[c.primary], true
}

// FindPrimaryAdal rebuilds the cache and returns the primary entry's id and
// path. The primary is the first container of either kind found during the
// scan, which matches the historical behavior this tool replaces; a
// consumer-identity container discovered first is returned as-is.
func FindPrimaryAdal(st store.Store, f Filter) (id, path string, ok bool) {
	entry, ok := Build(st, f).Primary()
	if !ok {
		return "", "", false
	}
	return entry.ID, entry.Path, true
}

// CollectPaths rebuilds the cache and returns the unique container paths in
// discovery order, each wrapped in double quotes for downstream shell
// consumption. Path uniqueness is case-insensitive.
func CollectPaths(st store.Store, f Filter) []string {
	var paths []string
	var seen []string
	for _, e := range Build(st, f).Entries() {
		if !f.matches(e.App) {
			continue
		}
		duplicate := false
		for _, s := range seen {
			if store.EqualPath(s, e.Path) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		seen = append(seen, e.Path)
		paths = append(paths, `"`+e.Path+`"`)
	}
	return paths
}

// FindFirstConsumerIdentity scans version roots newest first and returns the
// first consumer-identity container it encounters. This is a best-effort
// single pass without the cache's dedup bookkeeping; it stops at the first
// hit.
func FindFirstConsumerIdentity(st store.Store, f Filter) (id, path string, ok bool) {
	for _, version := range office.Versions {
		for _, app := range f.worklist() {
			base := office.RecentTemplatesKey(version, app)
			for _, child := range st.Children(base) {
				if kind, ok := ClassifyLeaf(child.Leaf); ok && kind == ConsumerIdentity {
					return child.Leaf, child.FullPath, true
				}
			}
		}
	}
	return "", "", false
}
