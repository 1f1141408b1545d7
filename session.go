// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package configvars

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// ErrMalformedAssignment is an error returned by [ParseAssignment] when
// a line does not respect the KEY = "value" grammar.
var ErrMalformedAssignment = errors.New(`invalid syntax: expected KEY = "value"`)

// assignmentRegex is the entry line grammar: an identifier key,
// an equals sign with optional single surrounding spaces, and a
// non-empty raw value.
var assignmentRegex = regexp.MustCompile(`^([a-zA-Z_]\w*) ?= ?(.+)$`)

// ParseAssignment parses a KEY = "value" line into its key/value pair.
// The value is either a quoted string (single or double quotes, which
// get stripped), or a bare integer/float literal kept as its literal
// text. Any other line is rejected with [ErrMalformedAssignment].
func ParseAssignment(line string) (key, value string, err error) {
	matches := assignmentRegex.FindStringSubmatch(line)
	if matches == nil {
		return "", "", ErrMalformedAssignment
	}
	key, rawValue := matches[1], matches[2]

	if len(rawValue) >= 2 {
		first, last := rawValue[0], rawValue[len(rawValue)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return key, rawValue[1 : len(rawValue)-1], nil
		}
	}

	if _, err := strconv.ParseFloat(rawValue, 64); err == nil {
		return key, rawValue, nil
	}

	return "", "", fmt.Errorf("%w: %s is neither a quoted string, nor a numeric literal", ErrMalformedAssignment, rawValue)
}

// Session collects a variables map interactively: it reads
// KEY = "value" lines until an empty one, echoing each accepted pair
// and diagnosing each malformed line without ending the session.
// A duplicate key takes the last entered value.
type Session struct {
	// in is the source assignment lines are read from.
	in io.Reader
	// out is where prompts, echoes and diagnostics are written.
	out io.Writer
	// prompt is written before each line read.
	prompt string
}

// NewSession instantiates a new Session reading assignment lines from
// in and writing prompts and diagnostics to out.
func NewSession(in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	session := &Session{
		in:     in,
		out:    out,
		prompt: ">>> ",
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Run reads assignment lines until an empty line or EOF and returns
// the collected variables map.
// An error is returned only if reading input itself fails; malformed
// lines are reported on the session's output and skipped.
func (session *Session) Run() (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(session.in)
	for {
		fmt.Fprint(session.out, session.prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}

		key, value, err := ParseAssignment(line)
		if err != nil {
			fmt.Fprintln(session.out, err)

			continue
		}
		vars[key] = value
		fmt.Fprintf(session.out, "key: %s, value: %s\n", key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entry session input: %w", err)
	}

	return vars, nil
}

// SessionOption defines optional function for configuring
// a Session object.
type SessionOption func(*Session)

// SessionWithPrompt sets the prompt written before each line read.
//
// By default, ">>> " is used.
func SessionWithPrompt(prompt string) SessionOption {
	return func(session *Session) {
		session.prompt = prompt
	}
}
