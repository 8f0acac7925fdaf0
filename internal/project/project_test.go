package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"mlc/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := project.FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if got != want {
		t.Errorf("path = %s, want %s", got, want)
	}

	gotRoot, ok, err := project.FindRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindRoot: ok=%v err=%v", ok, err)
	}
	if gotRoot != root {
		t.Errorf("root = %s, want %s", gotRoot, root)
	}
}

func TestFindManifestMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := project.FindManifest(dir)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Error("found a manifest in an empty tree")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"

[diagnostics]
max_errors = 20
warnings_as_errors = true

[lexer]
retain_comments = true
unicode_identifiers = false
`)

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Diagnostics.MaxErrors != 20 {
		t.Errorf("max_errors = %d", m.Config.Diagnostics.MaxErrors)
	}
	if !m.Config.Diagnostics.WarningsAsErrors {
		t.Error("warnings_as_errors not set")
	}
	if m.Config.Lexer.UnicodeIdentifiers == nil || *m.Config.Lexer.UnicodeIdentifiers {
		t.Error("unicode_identifiers should be explicitly false")
	}
	if m.Config.Lexer.RetainComments == nil || !*m.Config.Lexer.RetainComments {
		t.Error("retain_comments should be explicitly true")
	}
	if m.Config.Lexer.LookupTables != nil {
		t.Error("lookup_tables should be nil when unset")
	}
	if m.Root != dir {
		t.Errorf("root = %s, want %s", m.Root, dir)
	}
}

func TestLoadManifestUnsetLexerSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Lexer.UnicodeIdentifiers != nil {
		t.Error("unicode_identifiers should be nil when unset")
	}
}

func TestLoadManifestValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing package", "[diagnostics]\nmax_errors = 1\n"},
		{"missing name", "[package]\n"},
		{"blank name", "[package]\nname = \"  \"\n"},
		{"negative max errors", "[package]\nname = \"x\"\n[diagnostics]\nmax_errors = -1\n"},
		{"bad toml", "[package\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tc.content)
			if _, err := project.Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "pkg")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := project.Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
}
