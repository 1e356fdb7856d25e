// Package mru resolves the "File MRU" storage locations for the supported
// applications and parses the entries stored there.
package mru

import (
	"strings"

	"github.com/systmms/officemru/internal/containers"
	"github.com/systmms/officemru/internal/office"
	"github.com/systmms/officemru/pkg/store"
)

// AuthMode selects which authentication backend's container to resolve
// against.
type AuthMode int

const (
	EnterpriseDirectory AuthMode = iota
	ConsumerIdentity
)

// String returns the backend's display name.
func (m AuthMode) String() string {
	switch m {
	case EnterpriseDirectory:
		return "enterprise-directory"
	case ConsumerIdentity:
		return "consumer-identity"
	default:
		return "unknown"
	}
}

// ParseAuthMode normalizes an auth mode token. The historical aliases "adal"
// and "liveid" are accepted alongside the long names, case-insensitively.
func ParseAuthMode(name string) (AuthMode, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ADAL", "ENTERPRISE", "ENTERPRISE-DIRECTORY", "ENTERPRISEDIRECTORY":
		return EnterpriseDirectory, true
	case "LIVEID", "CONSUMER", "CONSUMER-IDENTITY", "CONSUMERIDENTITY":
		return ConsumerIdentity, true
	default:
		return 0, false
	}
}

const fileMRULeaf = "File MRU"

// Resolve returns the MRU storage path for one application and auth mode.
//
// Resolution walks three tiers and always produces a path:
//  1. the matching authentication container's File MRU subkey,
//  2. the first existing generic File MRU key, version roots newest first,
//  3. the deterministic default under the newest version root.
//
// The returned path is not guaranteed to exist; callers that act on it must
// existence-check first.
func Resolve(st store.Store, app office.App, mode AuthMode) string {
	switch mode {
	case EnterpriseDirectory:
		if _, path, ok := containers.FindPrimaryAdal(st, containers.Only(app)); ok {
			return store.JoinKey(path, fileMRULeaf)
		}
	case ConsumerIdentity:
		if _, path, ok := containers.FindFirstConsumerIdentity(st, containers.Only(app)); ok {
			return store.JoinKey(path, fileMRULeaf)
		}
	}

	for _, version := range office.Versions {
		candidate := store.JoinKey(office.RecentTemplatesKey(version, app), fileMRULeaf)
		if st.KeyExists(candidate) {
			return candidate
		}
	}

	return store.JoinKey(office.RecentTemplatesKey(office.Versions[0], app), fileMRULeaf)
}
