// Copyright The ConfigVars Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/configvars/configvars"
	"github.com/configvars/configvars/internal/cli"
)

// execute runs the root command with the given stdin and args,
// returning its combined output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_storesEnteredVariables(t *testing.T) {
	dir := t.TempDir()
	input := `flask.website
MAIL_USER = "user@example.com"
not an assignment
PIN = 9858

`

	out, err := execute(t, input, "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "storage name: ") {
		t.Errorf("missing storage name prompt in output: %q", out)
	}
	if !strings.Contains(out, "invalid syntax") {
		t.Errorf("missing malformed line diagnostic in output: %q", out)
	}
	if !strings.Contains(out, `stored 2 variable(s) for "flask.website"`) {
		t.Errorf("missing confirmation in output: %q", out)
	}

	store, err := configvars.NewStore(configvars.StoreWithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	vars, err := store.Read("flask.website")
	if err != nil {
		t.Fatalf("reading back stored record: %v", err)
	}
	want := map[string]string{"MAIL_USER": "user@example.com", "PIN": "9858"}
	got := vars.Map()
	if len(got) != len(want) || got["MAIL_USER"] != want["MAIL_USER"] || got["PIN"] != want["PIN"] {
		t.Errorf("stored variables = %v, want %v", got, want)
	}
}

func TestRootCmd_emptySessionStoresNothing(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "flask.website\n\n", "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "nothing stored") {
		t.Errorf("missing nothing-stored notice in output: %q", out)
	}

	store, _ := configvars.NewStore(configvars.StoreWithDir(dir))
	_, readErr := store.Read("flask.website")
	var notFoundErr *configvars.NameNotFoundError
	if !errors.As(readErr, &notFoundErr) {
		t.Errorf("expected NameNotFoundError, got %v", readErr)
	}
}

func TestRootCmd_rejectsInvalidStorageName(t *testing.T) {
	_, err := execute(t, "../escape\n\n", "--dir", t.TempDir())

	var invalidNameErr *configvars.InvalidNameError
	if !errors.As(err, &invalidNameErr) {
		t.Errorf("expected InvalidNameError, got %v", err)
	}
}

func TestRootCmd_rejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "--dir", t.TempDir(), "--format", "xml")

	if !errors.Is(err, configvars.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestListCmd(t *testing.T) {
	dir := t.TempDir()
	store, _ := configvars.NewStore(configvars.StoreWithDir(dir))
	for _, name := range []string{"flask.website", "api.staging"} {
		if err := store.Save(name, map[string]string{"PIN": "9858"}); err != nil {
			t.Fatal(err)
		}
	}

	out, err := execute(t, "", "list", "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "api.staging\nflask.website\n" {
		t.Errorf("unexpected list output: %q", out)
	}
}

func TestShowCmd(t *testing.T) {
	dir := t.TempDir()
	store, _ := configvars.NewStore(configvars.StoreWithDir(dir))
	if err := store.Save("flask.website", map[string]string{
		"MAIL_USER": "user@example.com",
		"PIN":       "9858",
	}); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "show", "flask.website", "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "MAIL_USER=user@example.com\nPIN=9858\n" {
		t.Errorf("unexpected show output: %q", out)
	}

	_, err = execute(t, "", "show", "unused.name", "--dir", dir)
	var notFoundErr *configvars.NameNotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Errorf("expected NameNotFoundError, got %v", err)
	}
}

func TestDeleteCmd(t *testing.T) {
	dir := t.TempDir()
	store, _ := configvars.NewStore(configvars.StoreWithDir(dir))
	if err := store.Save("flask.website", map[string]string{"PIN": "9858"}); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "delete", "flask.website", "--dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `deleted "flask.website"`) {
		t.Errorf("missing confirmation in output: %q", out)
	}

	_, readErr := store.Read("flask.website")
	var notFoundErr *configvars.NameNotFoundError
	if !errors.As(readErr, &notFoundErr) {
		t.Errorf("expected NameNotFoundError, got %v", readErr)
	}
}
