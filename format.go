// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization format a variable set
// is persisted with.
type Format string

// Supported persistence formats.
const (
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatTOML       Format = "toml"
	FormatDotEnv     Format = "env"
	FormatIni        Format = "ini"
	FormatProperties Format = "properties"
)

// Ext returns the file extension records of this format are stored with.
func (f Format) Ext() string {
	return "." + string(f)
}

// FormatForExt is a factory for the appropriate Format based on a file's
// extension. Supported extensions are: .json, .yml, .yaml, .toml, .env,
// .ini, .properties.
// An [ErrUnknownFormat] error is returned for anything else.
func FormatForExt(ext string) (Format, error) {
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".env":
		return FormatDotEnv, nil
	case ".ini":
		return FormatIni, nil
	case ".properties":
		return FormatProperties, nil
	}

	return "", ErrUnknownFormat
}

// Encode serializes a variables map to this format's representation.
func (f Format) Encode(vars map[string]string) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(vars, "", "  ")
	case FormatYAML:
		return yaml.Marshal(vars)
	case FormatTOML:
		return toml.Marshal(vars)
	case FormatDotEnv:
		return encodeDotEnv(vars), nil
	case FormatIni:
		return encodeIni(vars)
	case FormatProperties:
		return encodeProperties(vars)
	}

	return nil, ErrUnknownFormat
}

// Decode deserializes this format's representation back
// to a variables map.
// Scalar values of another type found in a hand-edited file
// are stringified.
func (f Format) Decode(content []byte) (map[string]string, error) {
	switch f {
	case FormatJSON:
		var raw map[string]any
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, err
		}

		return stringifyValues(raw)
	case FormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, err
		}

		return stringifyValues(raw)
	case FormatTOML:
		var raw map[string]any
		if err := toml.Unmarshal(content, &raw); err != nil {
			return nil, err
		}

		return stringifyValues(raw)
	case FormatDotEnv:
		return godotenv.Parse(bytes.NewReader(content))
	case FormatIni:
		return decodeIni(content)
	case FormatProperties:
		return decodeProperties(content)
	}

	return nil, ErrUnknownFormat
}

// encodeDotEnv writes one KEY="value" line per variable, sorted.
// Values are always double quoted so numeric looking strings like "007"
// survive the round trip unchanged.
func encodeDotEnv(vars map[string]string) []byte {
	var buf bytes.Buffer
	for _, name := range sortedKeys(vars) {
		buf.WriteString(name)
		buf.WriteByte('=')
		buf.WriteString(quoteDotEnvValue(vars[name]))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// quoteDotEnvValue double quotes a value, escaping the characters the
// dotenv parser gives a meaning to (quotes, backslashes, newlines and
// the variable expansion dollar).
func quoteDotEnvValue(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"$", `\$`,
	)

	return `"` + replacer.Replace(value) + `"`
}

// encodeIni writes all variables under the ini default section.
func encodeIni(vars map[string]string) ([]byte, error) {
	cfg := ini.Empty()
	section := cfg.Section(ini.DefaultSection)
	for _, name := range sortedKeys(vars) {
		if _, err := section.NewKey(name, vars[name]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeIni(content []byte) (map[string]string, error) {
	cfg, err := ini.Load(content)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			vars[key.Name()] = key.Value()
		}
	}

	return vars, nil
}

func encodeProperties(vars map[string]string) ([]byte, error) {
	props := properties.NewProperties()
	props.DisableExpansion = true
	for _, name := range sortedKeys(vars) {
		if _, _, err := props.Set(name, vars[name]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := props.Write(&buf, properties.UTF8); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeProperties(content []byte) (map[string]string, error) {
	loader := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(content)
	if err != nil {
		return nil, err
	}

	keys := props.Keys()
	vars := make(map[string]string, len(keys))
	for _, key := range keys {
		value, _ := props.Get(key)
		vars[key] = value
	}

	return vars, nil
}

// stringifyValues casts decoded values to strings.
func stringifyValues(raw map[string]any) (map[string]string, error) {
	vars := make(map[string]string, len(raw))
	for name, value := range raw {
		strValue, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}
		vars[name] = strValue
	}

	return vars, nil
}

// sortedKeys keeps encoded output deterministic for the
// line oriented formats.
func sortedKeys(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
