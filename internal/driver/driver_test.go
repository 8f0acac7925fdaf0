package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mlc/internal/diag"
	"mlc/internal/driver"
	"mlc/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.ml", "fn main() { return 42; }\n")

	res, err := driver.Tokenize(path, driver.DefaultOptions())
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.File == nil {
		t.Fatal("File is nil")
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %d", res.Bag.Len())
	}

	kinds := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.KwFn, token.Ident, token.LParen, token.RParen,
		token.LBrace, token.KwReturn, token.Integer, token.Semicolon,
		token.RBrace, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token[%d] = %v, want %v", i, kinds[i], k)
		}
	}

	if res.Stats.TokenCount == 0 {
		t.Error("stats not collected")
	}
	if len(res.Timing.Phases) < 2 {
		t.Errorf("timing phases = %d, want load+lex", len(res.Timing.Phases))
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	dir := t.TempDir()
	res, err := driver.Tokenize(filepath.Join(dir, "nope.ml"), driver.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if res == nil {
		t.Fatal("expected partial result")
	}
	if !res.Bag.HasErrors() {
		t.Error("expected FileNotFound diagnostic in bag")
	}
}

func TestTokenizeSource(t *testing.T) {
	res, err := driver.TokenizeSource("snippet.ml", []byte("let x = 1;"), driver.DefaultOptions())
	if err != nil {
		t.Fatalf("TokenizeSource: %v", err)
	}
	if got := len(res.Tokens); got != 6 {
		t.Fatalf("token count = %d, want 6", got)
	}
	if res.Tokens[0].Kind != token.KwLet {
		t.Errorf("first token = %v, want KwLet", res.Tokens[0].Kind)
	}
}

func TestTokenizeDiagnosticsPolicy(t *testing.T) {
	// \x без hex-цифр даёт warning на лексировании.
	src := []byte("let s = \"a\\xzz\";\n")

	res, err := driver.TokenizeSource("w.ml", src, driver.DefaultOptions())
	if err != nil {
		t.Fatalf("TokenizeSource: %v", err)
	}
	if res.DiagStats.Warnings != 1 || res.DiagStats.HasErrors() {
		t.Fatalf("default policy: stats = %+v", res.DiagStats)
	}

	opts := driver.DefaultOptions()
	opts.WarningsAsErrors = true
	res, err = driver.TokenizeSource("w.ml", src, opts)
	if err != nil {
		t.Fatalf("TokenizeSource: %v", err)
	}
	if !res.DiagStats.HasErrors() || res.DiagStats.Warnings != 0 {
		t.Fatalf("warnings-as-errors: stats = %+v", res.DiagStats)
	}
	if !res.Bag.HasErrors() {
		t.Error("promoted warning lost its level in the bag")
	}

	opts = driver.DefaultOptions()
	opts.SuppressWarnings = true
	res, err = driver.TokenizeSource("w.ml", src, opts)
	if err != nil {
		t.Fatalf("TokenizeSource: %v", err)
	}
	if res.Bag.Len() != 0 || res.DiagStats.Total != 0 {
		t.Fatalf("suppress-warnings: bag len = %d, stats = %+v", res.Bag.Len(), res.DiagStats)
	}
}

func TestTokenizeErrorBudget(t *testing.T) {
	// Каждый '$' даёт UnexpectedValue; бюджет в 2 ошибки останавливает
	// лексирование и добавляет финальную фатальную диагностику.
	src := []byte("$ $ $ $ $ $ $ $\n")
	opts := driver.DefaultOptions()
	opts.MaxDiagnostics = 2

	res, err := driver.TokenizeSource("e.ml", src, opts)
	if err != nil {
		t.Fatalf("TokenizeSource: %v", err)
	}
	if res.DiagStats.Errors != 2 {
		t.Fatalf("errors = %d, want 2", res.DiagStats.Errors)
	}
	if res.DiagStats.Fatals != 1 {
		t.Fatalf("fatals = %d, want the budget notice", res.DiagStats.Fatals)
	}
	last := res.Bag.Items()[res.Bag.Len()-1]
	if last.ID != diag.TooManyErrors {
		t.Errorf("last diagnostic = %v, want TooManyErrors", last.ID)
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.ml", "fn beta() {}\n")
	writeFile(t, dir, "a.ml", "fn alpha() {}\n")
	writeFile(t, dir, "notes.txt", "not a source file")

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.ml", "let broken = \"oops\n")

	mgr, interner, results, err := driver.TokenizeDir(context.Background(), dir, driver.DefaultOptions(), 4)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if mgr == nil || interner == nil {
		t.Fatal("manager or interner is nil")
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	// Порядок результатов следует отсортированному списку путей
	if filepath.Base(results[0].Path) != "a.ml" {
		t.Errorf("results[0] = %s, want a.ml", results[0].Path)
	}
	if filepath.Base(results[1].Path) != "b.ml" {
		t.Errorf("results[1] = %s, want b.ml", results[1].Path)
	}
	if filepath.Base(results[2].Path) != "c.ml" {
		t.Errorf("results[2] = %s, want c.ml", results[2].Path)
	}

	for i := range 2 {
		if results[i].Bag.HasErrors() {
			t.Errorf("results[%d]: unexpected errors", i)
		}
		if len(results[i].Tokens) == 0 {
			t.Errorf("results[%d]: no tokens", i)
		}
	}
	if !results[2].Bag.HasErrors() {
		t.Error("c.ml: expected unterminated string diagnostic")
	}

	merged := driver.MergeBags(results)
	if !merged.HasErrors() {
		t.Error("merged bag lost diagnostics")
	}

	total := driver.AggregateStats(results)
	if total.TokenCount < results[0].Stats.TokenCount {
		t.Error("aggregate stats smaller than a single file")
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	dir := t.TempDir()
	_, _, results, err := driver.TokenizeDir(context.Background(), dir, driver.DefaultOptions(), 0)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}

func TestTokenizeDirSharedInterner(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ml", "shared_name\n")
	writeFile(t, dir, "b.ml", "shared_name\n")

	_, interner, results, err := driver.TokenizeDir(context.Background(), dir, driver.DefaultOptions(), 2)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	a := results[0].Tokens[0]
	b := results[1].Tokens[0]
	if a.Kind != token.Ident || b.Kind != token.Ident {
		t.Fatalf("kinds = %v, %v, want Ident", a.Kind, b.Kind)
	}
	if a.Text != b.Text {
		t.Errorf("interner not shared: %v != %v", a.Text, b.Text)
	}
	if got, ok := interner.Lookup(a.Text); !ok || got != "shared_name" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
}
