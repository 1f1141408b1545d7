// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"sort"
	"time"

	"github.com/spf13/cast"
)

// VarSet is an immutable set of named configuration variables.
// It is the result of reading back a stored record.
// The zero value is an empty, usable set.
type VarSet struct {
	vars map[string]string
}

// NewVarSet instantiates a new VarSet from the given variables map.
// A copy of the map is taken, so later mutation of the parameter
// does not reflect into the set.
func NewVarSet(vars map[string]string) VarSet {
	varsCopy := make(map[string]string, len(vars))
	for name, value := range vars {
		varsCopy[name] = value
	}

	return VarSet{vars: varsCopy}
}

// Get returns the value for a given variable name,
// or a [VarNotFoundError] if the set does not contain it.
func (vs VarSet) Get(name string) (string, error) {
	value, found := vs.vars[name]
	if !found {
		return "", NewVarNotFoundError(name)
	}

	return value, nil
}

// MustGet returns the value for a given variable name.
// It panics if the set does not contain it.
func (vs VarSet) MustGet(name string) string {
	value, err := vs.Get(name)
	if err != nil {
		panic(err)
	}

	return value
}

// Lookup returns the value for a given variable name and
// a flag indicating whether the set contains it.
func (vs VarSet) Lookup(name string) (string, bool) {
	value, found := vs.vars[name]

	return value, found
}

// GetDefault returns the value for a given variable name,
// or the provided default if the set does not contain it.
func (vs VarSet) GetDefault(name, def string) string {
	if value, found := vs.vars[name]; found {
		return value
	}

	return def
}

// GetInt returns the value for a given variable name casted to an int.
// The optional second parameter is a default returned if the variable
// is not found, or its value cannot be casted.
func (vs VarSet) GetInt(name string, def ...int) int {
	return castGet(vs, name, cast.ToIntE, def)
}

// GetInt64 returns the value for a given variable name casted to an int64.
// The optional second parameter is a default returned if the variable
// is not found, or its value cannot be casted.
func (vs VarSet) GetInt64(name string, def ...int64) int64 {
	return castGet(vs, name, cast.ToInt64E, def)
}

// GetFloat64 returns the value for a given variable name casted to a float64.
// The optional second parameter is a default returned if the variable
// is not found, or its value cannot be casted.
func (vs VarSet) GetFloat64(name string, def ...float64) float64 {
	return castGet(vs, name, cast.ToFloat64E, def)
}

// GetBool returns the value for a given variable name casted to a bool.
// The optional second parameter is a default returned if the variable
// is not found, or its value cannot be casted.
func (vs VarSet) GetBool(name string, def ...bool) bool {
	return castGet(vs, name, cast.ToBoolE, def)
}

// GetDuration returns the value for a given variable name casted
// to a [time.Duration].
// The optional second parameter is a default returned if the variable
// is not found, or its value cannot be casted.
func (vs VarSet) GetDuration(name string, def ...time.Duration) time.Duration {
	return castGet(vs, name, cast.ToDurationE, def)
}

// castGet applies a cast function to a variable's value.
// If the variable is missing, or the cast fails, the default is
// returned (the type's zero value if no default was given).
func castGet[T any](vs VarSet, name string, castFn func(any) (T, error), def []T) T {
	var defaultValue T
	if len(def) > 0 {
		defaultValue = def[0]
	}

	value, found := vs.vars[name]
	if !found {
		return defaultValue
	}

	castValue, err := castFn(value)
	if err != nil {
		return defaultValue
	}

	return castValue
}

// Names returns the sorted variable names of the set.
func (vs VarSet) Names() []string {
	names := make([]string, 0, len(vs.vars))
	for name := range vs.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of variables in the set.
func (vs VarSet) Len() int {
	return len(vs.vars)
}

// Map returns the variables as a map.
// The returned map is a copy, safe for an eventual later mutation.
func (vs VarSet) Map() map[string]string {
	varsCopy := make(map[string]string, len(vs.vars))
	for name, value := range vs.vars {
		varsCopy[name] = value
	}

	return varsCopy
}

// Equal returns whether two sets contain the same variables
// with the same values.
func (vs VarSet) Equal(other VarSet) bool {
	if len(vs.vars) != len(other.vars) {
		return false
	}
	for name, value := range vs.vars {
		if otherValue, found := other.vars[name]; !found || otherValue != value {
			return false
		}
	}

	return true
}
