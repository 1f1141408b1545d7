// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"sort"
	"sync"

	"github.com/actforgood/xerr"
)

// Registry holds variables loaded from one or more storage names,
// process-wide, so they can be referenced directly without keeping a
// VarSet around.
// Variables stay held until the process exits, Reset is called, or a
// later Hold overwrites a colliding variable name.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	vars  map[string]string
	store *Store
}

// NewRegistry instantiates a new, empty Registry reading
// from the given store.
func NewRegistry(store *Store) *Registry {
	return &Registry{
		vars:  make(map[string]string),
		store: store,
	}
}

// Hold loads the variable set persisted under a storage name and merges
// it into the registry. A variable already held under the same name
// gets overwritten.
// A [NameNotFoundError] is returned if no record exists, in which case
// currently held variables are left untouched.
func (reg *Registry) Hold(name string) error {
	loaded, err := reg.store.Read(name)
	if err != nil {
		return err
	}

	reg.mu.Lock()
	for varName, value := range loaded.vars {
		reg.vars[varName] = value
	}
	reg.mu.Unlock()

	return nil
}

// HoldAll holds every given storage name, in order.
// Names that fail do not prevent the rest from being held; their
// errors are accumulated and returned together.
func (reg *Registry) HoldAll(names ...string) error {
	var mErr *xerr.MultiError
	for _, name := range names {
		if err := reg.Hold(name); err != nil {
			mErr = mErr.Add(err)
		}
	}

	return mErr.ErrOrNil()
}

// Get returns the held value for a given variable name,
// or a [VarNotFoundError] if no held variable has that name.
func (reg *Registry) Get(name string) (string, error) {
	reg.mu.RLock()
	value, found := reg.vars[name]
	reg.mu.RUnlock()
	if !found {
		return "", NewVarNotFoundError(name)
	}

	return value, nil
}

// MustGet returns the held value for a given variable name.
// It panics if no held variable has that name.
func (reg *Registry) MustGet(name string) string {
	value, err := reg.Get(name)
	if err != nil {
		panic(err)
	}

	return value
}

// Lookup returns the held value for a given variable name and
// a flag indicating whether the registry holds it.
func (reg *Registry) Lookup(name string) (string, bool) {
	reg.mu.RLock()
	value, found := reg.vars[name]
	reg.mu.RUnlock()

	return value, found
}

// Names returns the sorted names of all held variables.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	names := make([]string, 0, len(reg.vars))
	for name := range reg.vars {
		names = append(names, name)
	}
	reg.mu.RUnlock()
	sort.Strings(names)

	return names
}

// Reset drops every held variable.
func (reg *Registry) Reset() {
	reg.mu.Lock()
	reg.vars = make(map[string]string)
	reg.mu.Unlock()
}

// defaultRegistry backs the package level Hold/Get functions.
// This is shared mutable state scoped to the process lifetime.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
	defaultRegistryErr  error
)

// DefaultRegistry returns the package level registry, reading from a
// default Store. It is created on first use.
func DefaultRegistry() (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		store, err := NewStore()
		if err != nil {
			defaultRegistryErr = err

			return
		}
		defaultRegistry = NewRegistry(store)
	})

	return defaultRegistry, defaultRegistryErr
}

// Hold loads the variable set persisted under a storage name and
// merges it into the package level registry.
// After a successful call, configvars.Get / configvars.MustGet expose
// the set's variables until process exit, or until a later Hold
// overwrites them.
//
// Usage example:
//
//	if err := configvars.Hold("flask.website"); err != nil {
//		return err
//	}
//	mailUser := configvars.MustGet("MAIL_USER")
func Hold(name string) error {
	reg, err := DefaultRegistry()
	if err != nil {
		return err
	}

	return reg.Hold(name)
}

// HoldAll holds every given storage name in the package level registry,
// accumulating the errors of the names that fail.
func HoldAll(names ...string) error {
	reg, err := DefaultRegistry()
	if err != nil {
		return err
	}

	return reg.HoldAll(names...)
}

// Get returns the value held in the package level registry for a given
// variable name, or a [VarNotFoundError].
func Get(name string) (string, error) {
	reg, err := DefaultRegistry()
	if err != nil {
		return "", err
	}

	return reg.Get(name)
}

// MustGet returns the value held in the package level registry for a
// given variable name. It panics if no held variable has that name.
func MustGet(name string) string {
	reg, err := DefaultRegistry()
	if err != nil {
		panic(err)
	}

	return reg.MustGet(name)
}

// Lookup returns the value held in the package level registry for a
// given variable name and a flag indicating whether it is held.
func Lookup(name string) (string, bool) {
	reg, err := DefaultRegistry()
	if err != nil {
		return "", false
	}

	return reg.Lookup(name)
}

// Reset drops every variable held in the package level registry.
func Reset() {
	if reg, err := DefaultRegistry(); err == nil {
		reg.Reset()
	}
}
