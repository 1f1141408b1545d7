// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// Load returns the variable set persisted under a storage name,
// using a default Store configured with the given options.
// A [NameNotFoundError] is returned if no record exists.
//
// Usage example:
//
//	vars, err := configvars.Load("flask.website")
//	if err != nil {
//		return err
//	}
//	mailUser, err := vars.Get("MAIL_USER")
func Load(name string, opts ...StoreOption) (VarSet, error) {
	store, err := NewStore(opts...)
	if err != nil {
		return VarSet{}, err
	}

	return store.Read(name)
}

// Bind loads the variable set persisted under a storage name and
// applies it onto target's fields, using a default Store.
// A different directory or format needs a Store built with the
// appropriate options and [Store.Bind].
// See [Store.Bind] for the binding rules.
func Bind(name string, target any, vars ...string) error {
	store, err := NewStore()
	if err != nil {
		return err
	}

	return store.Bind(name, target, vars...)
}

// Bind loads the variable set persisted under a storage name and
// applies it onto target's fields.
// Target must be a non-nil pointer to a struct.
//
// A field matches a variable by its `configvars:"NAME"` tag, or by its
// own name; a "-" tag excludes the field. Matched fields of type string,
// bool, int/uint flavours, float flavours and [time.Duration] get the
// variable's value casted accordingly.
//
// With no explicit vars, every variable having a matching field is
// applied and the rest are ignored. With explicit vars, each one must
// exist both in the set (a [VarNotFoundError] otherwise) and in the
// target.
func (store *Store) Bind(name string, target any, vars ...string) error {
	loaded, err := store.Read(name)
	if err != nil {
		return err
	}

	structValue, err := settableStruct(target)
	if err != nil {
		return err
	}
	fields := bindableFields(structValue)

	if len(vars) == 0 {
		for varName, field := range fields {
			if value, found := loaded.Lookup(varName); found {
				if err := setField(field, value); err != nil {
					return fmt.Errorf(`binding variable "%s" from "%s": %w`, varName, name, err)
				}
			}
		}

		return nil
	}

	for _, varName := range vars {
		value, found := loaded.Lookup(varName)
		if !found {
			return NewVarNotFoundError(varName)
		}
		field, found := fields[varName]
		if !found {
			return fmt.Errorf(`no bindable field for variable "%s" on %s`, varName, structValue.Type())
		}
		if err := setField(field, value); err != nil {
			return fmt.Errorf(`binding variable "%s" from "%s": %w`, varName, name, err)
		}
	}

	return nil
}

// settableStruct dereferences target down to a settable struct value.
func settableStruct(target any) (reflect.Value, error) {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return reflect.Value{}, fmt.Errorf("bind target must be a non-nil pointer to a struct, got %T", target)
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("bind target must be a non-nil pointer to a struct, got %T", target)
	}

	return value, nil
}

// bindableFields maps variable names to target's settable fields.
func bindableFields(structValue reflect.Value) map[string]reflect.Value {
	structType := structValue.Type()
	fields := make(map[string]reflect.Value, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		fieldType := structType.Field(i)
		fieldValue := structValue.Field(i)
		if !fieldValue.CanSet() {
			continue
		}
		varName := fieldType.Name
		if tag, hasTag := fieldType.Tag.Lookup("configvars"); hasTag {
			if tag == "-" {
				continue
			}
			varName = tag
		}
		fields[varName] = fieldValue
	}

	return fields
}

// setField casts a variable's value to the field's type and sets it.
func setField(field reflect.Value, value string) error {
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		duration, err := cast.ToDurationE(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(duration))

		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		boolValue, err := cast.ToBoolE(value)
		if err != nil {
			return err
		}
		field.SetBool(boolValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := cast.ToInt64E(value)
		if err != nil {
			return err
		}
		field.SetInt(intValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := cast.ToUint64E(value)
		if err != nil {
			return err
		}
		field.SetUint(uintValue)
	case reflect.Float32, reflect.Float64:
		floatValue, err := cast.ToFloat64E(value)
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}

	return nil
}
