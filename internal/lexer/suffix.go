package lexer

import "strings"

// IsValidIntegerSuffix проверяет суффикс целочисленного литерала: пусто,
// u/U, l/L, ll/LL и их комбинации. Смешанный регистр lL/Ll недопустим.
func IsValidIntegerSuffix(s string) bool {
	switch strings.ToLower(s) {
	case "", "u", "l", "ul", "lu":
		return true
	case "ll", "ull", "llu":
		return strings.Contains(s, "ll") || strings.Contains(s, "LL")
	default:
		return false
	}
}

// IsValidFloatSuffix проверяет суффикс вещественного литерала: пусто, f/F, l/L.
func IsValidFloatSuffix(s string) bool {
	switch s {
	case "", "f", "F", "l", "L":
		return true
	default:
		return false
	}
}
