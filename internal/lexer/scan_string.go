package lexer

import (
	"mlc/internal/diag"
	"mlc/internal/token"
)

// lexString сканирует "..." с пропуском escape-последовательностей.
// Токен получает FlagNeedsCleaning, если внутри были escape-ы: декодирует
// их CleanString. Перевод строки внутри литерала завершает его с
// диагностикой, сам перевод строки не потребляется.
func (lx *Lexer) lexString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая '"'

	hasEscapes := false
	terminated := false

scan:
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == '"':
			lx.cursor.Bump()
			terminated = true
			break scan
		case b == '\\':
			hasEscapes = true
			lx.cursor.Bump()
			lx.skipEscapeBody()
		case b == '\n' || b == '\r':
			break scan
		default:
			lx.cursor.Bump()
		}
	}

	if !terminated {
		lx.report(diag.UnterminatedStringLiteral, lx.cursor.LocAt(uint32(start)))
	}

	text := lx.cursor.TextFrom(start)
	lx.stats.CharacterCount += uint64(len(text))

	tok := lx.makeToken(token.String, start)
	if hasEscapes {
		tok.AddFlag(token.FlagNeedsCleaning)
	}
	tok.Text = lx.interner.InternBytes(text)
	lx.stats.LiteralCount++
	return tok
}

// skipEscapeBody потребляет тело escape-последовательности после '\'.
// Формы: \xNN (до 2 hex), \uNNNN (ровно 4 hex), \UNNNNNNNN (ровно 8 hex),
// \NNN (восьмеричная, до 3 цифр), иначе один символ. Неполные hex-формы,
// которые CleanString декодирует как буквальный символ, получают
// предупреждение.
func (lx *Lexer) skipEscapeBody() {
	if lx.cursor.EOF() {
		return
	}
	escLoc := lx.cursor.LocAt(lx.cursor.Off - 1)
	switch c := lx.cursor.Bump(); {
	case c == 'x':
		if lx.eatHexDigits(2) == 0 {
			lx.report(diag.InvalidEscapeSequence, escLoc, "x")
		}
	case c == 'u':
		if lx.eatHexDigits(4) != 4 {
			lx.report(diag.InvalidEscapeSequence, escLoc, "u")
		}
	case c == 'U':
		if lx.eatHexDigits(8) != 8 {
			lx.report(diag.InvalidEscapeSequence, escLoc, "U")
		}
	case c >= '0' && c <= '7':
		for i := 0; i < 2 && !lx.cursor.EOF() && isOctalDigit(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
	}
}

// eatHexDigits потребляет до max hex-цифр и возвращает, сколько съедено.
func (lx *Lexer) eatHexDigits(max int) int {
	n := 0
	for n < max && !lx.cursor.EOF() && isHexDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	return n
}
