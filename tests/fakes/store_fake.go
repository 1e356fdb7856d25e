// Package fakes provides manual fake implementations for testing.
//
// Fakes are test doubles with working in-memory implementations, configured
// through fluent builders. They stand in for the Windows registry so the
// discovery and resolution engines can be tested on any platform.
package fakes

import (
	"strings"

	"github.com/systmms/officemru/pkg/store"
)

// FakeStore is an in-memory implementation of store.Store.
//
// Keys are registered with builder methods and matched case-insensitively,
// like the real registry. Children keep their registration order, which is
// the fake's "native enumeration order".
//
// Example usage:
//
//	st := fakes.NewFakeStore().
//	    WithChildren(office.RecentTemplatesKey("15.0", office.Word), "ADAL_9f3e").
//	    WithValue(somePath, "Item 1", "[F00000000]*C:\\a.dotx")
type FakeStore struct {
	keys []*fakeKey
}

type fakeKey struct {
	path     string
	children []string
	values   []store.Value
}

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) key(path string) *fakeKey {
	for _, k := range f.keys {
		if store.EqualPath(k.path, path) {
			return k
		}
	}
	return nil
}

func (f *FakeStore) ensureKey(path string) *fakeKey {
	if k := f.key(path); k != nil {
		return k
	}
	k := &fakeKey{path: path}
	f.keys = append(f.keys, k)
	return k
}

// WithKey registers an empty key.
func (f *FakeStore) WithKey(path string) *FakeStore {
	f.ensureKey(path)
	return f
}

// WithChildren registers a key together with its immediate subkeys, in the
// given enumeration order. The subkeys become keys of their own.
func (f *FakeStore) WithChildren(path string, leaves ...string) *FakeStore {
	k := f.ensureKey(path)
	for _, leaf := range leaves {
		k.children = append(k.children, leaf)
		f.ensureKey(store.JoinKey(k.path, leaf))
	}
	return f
}

// WithValue registers a key together with one named string value.
func (f *FakeStore) WithValue(path, name, data string) *FakeStore {
	k := f.ensureKey(path)
	k.values = append(k.values, store.Value{Name: name, Data: data})
	return f
}

// KeyExists reports whether path was registered.
func (f *FakeStore) KeyExists(path string) bool {
	return f.key(path) != nil
}

// Children returns the registered subkeys of path in registration order.
func (f *FakeStore) Children(path string) []store.Child {
	k := f.key(path)
	if k == nil {
		return nil
	}
	children := make([]store.Child, 0, len(k.children))
	for _, leaf := range k.children {
		children = append(children, store.Child{
			Leaf:     leaf,
			FullPath: store.JoinKey(k.path, leaf),
		})
	}
	return children
}

// Values returns the registered values of path in registration order.
func (f *FakeStore) Values(path string) []store.Value {
	k := f.key(path)
	if k == nil {
		return nil
	}
	return append([]store.Value(nil), k.values...)
}

// Value reads a single registered value, matching the name
// case-insensitively.
func (f *FakeStore) Value(path, name string) (string, bool) {
	k := f.key(path)
	if k == nil {
		return "", false
	}
	for _, v := range k.values {
		if strings.EqualFold(v.Name, name) {
			return v.Data, true
		}
	}
	return "", false
}

var _ store.Store = (*FakeStore)(nil)
