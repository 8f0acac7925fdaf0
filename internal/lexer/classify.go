package lexer

// Битовые классы символов для таблицы charClass.
const (
	classAlpha      uint8 = 1 << 0
	classDigit      uint8 = 1 << 1
	classWhitespace uint8 = 1 << 2
	classNewline    uint8 = 1 << 3
	classHex        uint8 = 1 << 4
)

// charClass — таблица классификации на 256 байт. Подчёркивание считается
// буквой, чтобы идентификаторы сканировались одной проверкой.
var charClass = func() [256]uint8 {
	var t [256]uint8
	for c := 'a'; c <= 'z'; c++ {
		t[c] = classAlpha
		if c <= 'f' {
			t[c] |= classHex
		}
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = classAlpha
		if c <= 'F' {
			t[c] |= classHex
		}
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = classDigit | classHex
	}
	t[' '] = classWhitespace
	t['\t'] = classWhitespace
	t['\v'] = classWhitespace
	t['\f'] = classWhitespace
	t['\n'] = classNewline
	t['\r'] = classNewline
	t['_'] = classAlpha
	return t
}()

func isAlpha(b byte) bool      { return charClass[b]&classAlpha != 0 }
func isDigit(b byte) bool      { return charClass[b]&classDigit != 0 }
func isAlnum(b byte) bool      { return charClass[b]&(classAlpha|classDigit) != 0 }
func isWhitespace(b byte) bool { return charClass[b]&classWhitespace != 0 }
func isNewline(b byte) bool    { return charClass[b]&classNewline != 0 }
func isHexDigit(b byte) bool   { return charClass[b]&classHex != 0 }

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }
func isOctalDigit(b byte) bool  { return b >= '0' && b <= '7' }
