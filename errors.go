// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is an error returned when a persistence format
// or a file extension does not match any supported format.
var ErrUnknownFormat = errors.New("unknown variables file format")

// NameNotFoundError is an error returned when a storage name
// has no persisted record.
type NameNotFoundError struct {
	name string // the storage name without a record
}

// NewNameNotFoundError instantiates a new NameNotFoundError.
// The not found storage name must be provided.
func NewNameNotFoundError(name string) *NameNotFoundError {
	return &NameNotFoundError{name: name}
}

// Error returns string representation of the NameNotFoundError.
// It implements standard go error interface.
func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf(`storage name "%s" not found`, e.name)
}

// Name returns the storage name that had no record.
func (e *NameNotFoundError) Name() string {
	return e.name
}

// VarNotFoundError is an error returned when a variable name
// is not present in a variable set.
type VarNotFoundError struct {
	varName string // the missing variable name
}

// NewVarNotFoundError instantiates a new VarNotFoundError.
// The missing variable name must be provided.
func NewVarNotFoundError(varName string) *VarNotFoundError {
	return &VarNotFoundError{varName: varName}
}

// Error returns string representation of the VarNotFoundError.
// It implements standard go error interface.
func (e *VarNotFoundError) Error() string {
	return fmt.Sprintf(`variable "%s" not found`, e.varName)
}

// Var returns the missing variable name.
func (e *VarNotFoundError) Var() string {
	return e.varName
}

// InvalidNameError is an error returned when a storage name does not
// respect the dotted identifier grammar (see [ValidateName]).
type InvalidNameError struct {
	name string // the rejected storage name
}

// NewInvalidNameError instantiates a new InvalidNameError.
// The rejected storage name must be provided.
func NewInvalidNameError(name string) *InvalidNameError {
	return &InvalidNameError{name: name}
}

// Error returns string representation of the InvalidNameError.
// It implements standard go error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf(`invalid storage name "%s": expected dot-delimited identifiers`, e.name)
}

// Name returns the rejected storage name.
func (e *InvalidNameError) Name() string {
	return e.name
}
