// Package templates resolves the custom template directory each application
// saves user templates into.
package templates

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/systmms/officemru/internal/office"
	"github.com/systmms/officemru/pkg/store"
)

// DefaultDirName is the directory Office creates under Documents when no
// explicit template path is configured.
const DefaultDirName = "Custom Office Templates"

// ResolveDir returns the custom template directory for one application.
//
// The ladder mirrors how Office itself decides: first the per-application
// "PersonalTemplates" value under <version>\<Segment>\Options, version roots
// newest first; then the shared "UserTemplates" value under
// <version>\Common\General; finally the fallback directory. Resolved values
// are trimmed of whitespace and trailing separators.
func ResolveDir(st store.Store, app office.App, fallback string) string {
	for _, version := range office.Versions {
		key := store.JoinKey(office.BaseKey, version, app.Segment(), "Options")
		if dir := trimPath(readValue(st, key, "PersonalTemplates")); dir != "" {
			return dir
		}
	}
	for _, version := range office.Versions {
		key := store.JoinKey(office.BaseKey, version, "Common", "General")
		if dir := trimPath(readValue(st, key, "UserTemplates")); dir != "" {
			return dir
		}
	}
	return trimPath(fallback)
}

// DefaultFallbackDir returns the conventional template directory under the
// user's Documents folder.
func DefaultFallbackDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, "Documents", DefaultDirName)
}

func readValue(st store.Store, key, name string) string {
	value, _ := st.Value(key, name)
	return value
}

// trimPath strips surrounding whitespace and trailing path separators.
func trimPath(path string) string {
	return strings.TrimRight(strings.TrimSpace(path), `\/`)
}
