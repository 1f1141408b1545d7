// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package configvars stores named sets of key-value configuration
// variables on local disk and loads them back.
// A stored set is identified by a dotted storage name (like "flask.website")
// and can be retrieved as an immutable VarSet, bound onto a struct's
// fields, or held in a process-wide registry for direct access.
// Supported persistence formats are json, yaml, toml, env, ini, (java) properties.
package configvars
