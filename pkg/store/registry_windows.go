//go:build windows

package store

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

// registryStore implements Store against the Windows registry.
type registryStore struct{}

// NewPlatformStore creates the platform configuration store.
func NewPlatformStore() Store {
	return registryStore{}
}

// hiveKey maps a hive token to its registry root key.
func hiveKey(hive string) (registry.Key, bool) {
	switch strings.ToUpper(hive) {
	case "HKCU", "HKEY_CURRENT_USER":
		return registry.CURRENT_USER, true
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return registry.LOCAL_MACHINE, true
	default:
		return 0, false
	}
}

func (registryStore) open(path string, access uint32) (registry.Key, bool) {
	hive, rest := SplitHive(path)
	root, ok := hiveKey(hive)
	if !ok {
		return 0, false
	}
	k, err := registry.OpenKey(root, rest, access)
	if err != nil {
		// Absent and access-denied keys alike behave as empty.
		return 0, false
	}
	return k, true
}

// KeyExists reports whether path names an existing registry key.
func (s registryStore) KeyExists(path string) bool {
	k, ok := s.open(path, registry.QUERY_VALUE)
	if !ok {
		return false
	}
	k.Close()
	return true
}

// Children returns the immediate subkeys of path in registry enumeration order.
func (s registryStore) Children(path string) []Child {
	k, ok := s.open(path, registry.ENUMERATE_SUB_KEYS)
	if !ok {
		return nil
	}
	defer k.Close()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	children := make([]Child, 0, len(names))
	for _, name := range names {
		children = append(children, Child{
			Leaf:     name,
			FullPath: JoinKey(path, name),
		})
	}
	return children
}

// Values returns the named string values under path.
func (s registryStore) Values(path string) []Value {
	k, ok := s.open(path, registry.QUERY_VALUE)
	if !ok {
		return nil
	}
	defer k.Close()

	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil
	}
	values := make([]Value, 0, len(names))
	for _, name := range names {
		data, _, err := k.GetStringValue(name)
		if err != nil {
			// Non-string values are simply not surfaced.
			continue
		}
		values = append(values, Value{Name: name, Data: data})
	}
	return values
}

// Value reads a single named string value under path.
func (s registryStore) Value(path, name string) (string, bool) {
	k, ok := s.open(path, registry.QUERY_VALUE)
	if !ok {
		return "", false
	}
	defer k.Close()

	data, _, err := k.GetStringValue(name)
	if err != nil {
		return "", false
	}
	return data, true
}

var _ Store = registryStore{}
