package token

import (
	"slices"
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"auto":     KwAuto,
		"break":    KwBreak,
		"fn":       KwFn,
		"for":      KwFor,
		"let":      KwLet,
		"mod":      KwMod,
		"mut":      KwMut,
		"null":     KwNull,
		"struct":   KwStruct,
		"true":     KwTrue,
		"false":    KwFalse,
		"while":    KwWhile,
		"continue": KwContinue,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "LET", "While", // регистр важен
		"int", "int8", "uint32", "float64", // имена типов — Ident
		"function", "module", // полные формы не распознаются
		"identifier", "toString", "",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeywordKindFallsBackToIdent(t *testing.T) {
	if got := KeywordKind("banana"); got != Ident {
		t.Fatalf("KeywordKind(banana) = %v", got)
	}
	if got := KeywordKind("return"); got != KwReturn {
		t.Fatalf("KeywordKind(return) = %v", got)
	}
}

// Бинарный поиск корректен только на отсортированной таблице.
func TestKeywordTableSorted(t *testing.T) {
	if !slices.IsSortedFunc(keywordTable[:], func(a, b keywordEntry) int {
		return compareWords(a.word, b.word)
	}) {
		t.Fatal("keyword table is not sorted")
	}
}

// Каждое ключевое слово из перечисления должно находиться через таблицу.
func TestKeywordTableComplete(t *testing.T) {
	for k := KwAuto; k <= KwWhile; k++ {
		got, ok := LookupKeyword(k.Spelling())
		if !ok || got != k {
			t.Fatalf("LookupKeyword(%q) = %v, %v", k.Spelling(), got, ok)
		}
	}
	if len(keywordTable) != int(KwWhile-KwAuto)+1 {
		t.Fatalf("table has %d entries, enum has %d", len(keywordTable), int(KwWhile-KwAuto)+1)
	}
}

func compareWords(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func BenchmarkLookupKeyword(b *testing.B) {
	words := []string{"fn", "notakeyword", "while", "x", "continue", "zebra"}
	b.ResetTimer()
	for i := range b.N {
		LookupKeyword(words[i%len(words)])
	}
}
