//go:build !windows

package store

// unsupportedStore is a stub for platforms without a registry.
type unsupportedStore struct{}

// NewPlatformStore creates a stub store on non-Windows platforms.
// Every lookup reports absence, so resolution degrades to its defaults.
func NewPlatformStore() Store {
	return unsupportedStore{}
}

// KeyExists always reports false on unsupported platforms.
func (unsupportedStore) KeyExists(path string) bool { return false }

// Children always returns nothing on unsupported platforms.
func (unsupportedStore) Children(path string) []Child { return nil }

// Values always returns nothing on unsupported platforms.
func (unsupportedStore) Values(path string) []Value { return nil }

// Value always reports absence on unsupported platforms.
func (unsupportedStore) Value(path, name string) (string, bool) { return "", false }

var _ Store = unsupportedStore{}
