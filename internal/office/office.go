// Package office models the supported desktop applications and their
// configuration-store layout.
package office

import (
	"strings"

	"github.com/systmms/officemru/pkg/store"
)

// App identifies one of the supported desktop applications.
type App int

const (
	Word App = iota
	PowerPoint
	Excel
)

// Apps lists the known applications in fixed scan order.
var Apps = []App{Word, PowerPoint, Excel}

// Versions lists the known configuration-store version roots, newest first.
// Scans always walk this order.
var Versions = []string{"16.0", "15.0", "14.0", "12.0"}

// BaseKey is the hive-prefixed root of the per-application configuration tree.
const BaseKey = `HKCU\Software\Microsoft\Office`

// Segment returns the application's configuration-store segment name.
func (a App) Segment() string {
	switch a {
	case Word:
		return "Word"
	case PowerPoint:
		return "PowerPoint"
	case Excel:
		return "Excel"
	default:
		return ""
	}
}

// String returns the segment name; it doubles as the display name.
func (a App) String() string { return a.Segment() }

// ResolveApp maps a name token to an application. Matching is case-insensitive
// against the fixed set {WORD, POWERPOINT, EXCEL}. Both candidates are
// evaluated, primary first; when both match, the secondary wins. Tokens are
// assumed to be already trimmed by the caller.
func ResolveApp(primary, secondary string) (App, bool) {
	app, ok := matchApp(primary)
	if alt, altOK := matchApp(secondary); altOK {
		return alt, true
	}
	return app, ok
}

func matchApp(name string) (App, bool) {
	switch strings.ToUpper(name) {
	case "WORD":
		return Word, true
	case "POWERPOINT":
		return PowerPoint, true
	case "EXCEL":
		return Excel, true
	default:
		return 0, false
	}
}

// RecentTemplatesKey composes the Recent Templates key for one version root
// and application.
func RecentTemplatesKey(version string, app App) string {
	return store.JoinKey(BaseKey, version, app.Segment(), "Recent Templates")
}
