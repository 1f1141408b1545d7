// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// nameRegex is the storage name grammar: dot-delimited identifiers.
var nameRegex = regexp.MustCompile(`^[a-zA-Z_]\w*(\.[a-zA-Z_]\w*)*$`)

// ValidateName checks a storage name against the dotted identifier
// grammar (like "flask.website").
// An [InvalidNameError] is returned for anything else, keeping names
// from resolving outside the store directory.
func ValidateName(name string) error {
	if !nameRegex.MatchString(name) {
		return NewInvalidNameError(name)
	}

	return nil
}

// Store persists named variable sets on local disk, one file per
// storage name, all under the same directory.
// For a given storage name there is at most one persisted record;
// saving under an existing name replaces the record wholesale.
type Store struct {
	// dir is the directory records are stored under.
	dir string
	// format is the serialization format records are stored with.
	format Format
}

// NewStore instantiates a new Store object.
// By default records live under [DefaultDir]'s result in JSON format;
// see StoreWith* options for changing that.
func NewStore(opts ...StoreOption) (*Store, error) {
	store := &Store{format: FormatJSON}

	// apply options, if any.
	for _, opt := range opts {
		opt(store)
	}

	if store.dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		store.dir = dir
	}

	return store, nil
}

// DefaultDir returns the default storage directory,
// <user config dir>/configvars.
func DefaultDir() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}

	return filepath.Join(cfgDir, "configvars"), nil
}

// Dir returns the directory records are stored under.
func (store *Store) Dir() string {
	return store.dir
}

// Format returns the serialization format records are stored with.
func (store *Store) Format() Format {
	return store.format
}

// Path returns the file path a given storage name's record
// lives at (whether or not it exists).
func (store *Store) Path(name string) string {
	return filepath.Join(store.dir, name+store.format.Ext())
}

// Save persists a variables map under a storage name, replacing any
// prior record for the same name.
// The storage directory is created if needed.
func (store *Store) Save(name string, vars map[string]string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	content, err := store.format.Encode(vars)
	if err != nil {
		return fmt.Errorf(`encoding variables for "%s": %w`, name, err)
	}

	if err := os.MkdirAll(store.dir, 0o700); err != nil {
		return fmt.Errorf("creating storage dir: %w", err)
	}
	if err := os.WriteFile(store.Path(name), content, 0o600); err != nil {
		return fmt.Errorf(`writing record for "%s": %w`, name, err)
	}

	return nil
}

// Read returns the variable set persisted under a storage name.
// A [NameNotFoundError] is returned if no record exists.
func (store *Store) Read(name string) (VarSet, error) {
	if err := ValidateName(name); err != nil {
		return VarSet{}, err
	}

	content, err := os.ReadFile(store.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return VarSet{}, NewNameNotFoundError(name)
		}

		return VarSet{}, fmt.Errorf(`reading record for "%s": %w`, name, err)
	}

	vars, err := store.format.Decode(content)
	if err != nil {
		return VarSet{}, fmt.Errorf(`decoding record for "%s": %w`, name, err)
	}

	return VarSet{vars: vars}, nil
}

// Delete removes the record persisted under a storage name.
// A [NameNotFoundError] is returned if no record exists.
func (store *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if err := os.Remove(store.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return NewNameNotFoundError(name)
		}

		return fmt.Errorf(`deleting record for "%s": %w`, name, err)
	}

	return nil
}

// List returns the sorted storage names having a record
// in the store's format.
// A store whose directory does not exist yet simply has no names.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("listing storage dir: %w", err)
	}

	ext := store.format.Ext()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// StoreOption defines optional function for configuring a Store object.
type StoreOption func(*Store)

// StoreWithDir sets the directory records are stored under.
//
// By default, [DefaultDir]'s result is used.
func StoreWithDir(dir string) StoreOption {
	return func(store *Store) {
		store.dir = dir
	}
}

// StoreWithFormat sets the serialization format records are stored with.
//
// By default, [FormatJSON] is used.
//
// Usage example:
//
//	store, err := configvars.NewStore(configvars.StoreWithFormat(configvars.FormatYAML))
func StoreWithFormat(format Format) StoreOption {
	return func(store *Store) {
		store.format = format
	}
}
