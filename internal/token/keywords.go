package token

import "strings"

type keywordEntry struct {
	word string
	kind Kind
}

// Отсортировано по word: бинарный поиск это требует.
var keywordTable = [...]keywordEntry{
	{"auto", KwAuto},
	{"break", KwBreak},
	{"case", KwCase},
	{"const", KwConst},
	{"continue", KwContinue},
	{"default", KwDefault},
	{"do", KwDo},
	{"else", KwElse},
	{"enum", KwEnum},
	{"extern", KwExtern},
	{"false", KwFalse},
	{"fn", KwFn},
	{"for", KwFor},
	{"if", KwIf},
	{"import", KwImport},
	{"let", KwLet},
	{"mod", KwMod},
	{"mut", KwMut},
	{"null", KwNull},
	{"return", KwReturn},
	{"struct", KwStruct},
	{"switch", KwSwitch},
	{"true", KwTrue},
	{"type", KwType},
	{"var", KwVar},
	{"while", KwWhile},
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	lo, hi := 0, len(keywordTable)
	for lo < hi {
		mid := (lo + hi) >> 1
		if c := strings.Compare(keywordTable[mid].word, ident); c < 0 {
			lo = mid + 1
		} else if c > 0 {
			hi = mid
		} else {
			return keywordTable[mid].kind, true
		}
	}
	return Unknown, false
}

// KeywordKind maps identifier text to its keyword kind, Ident for everything
// else.
func KeywordKind(ident string) Kind {
	if k, ok := LookupKeyword(ident); ok {
		return k
	}
	return Ident
}
