package lexer

import (
	"mlc/internal/token"
)

// lexNumber сканирует числовой литерал: 0x.., 0b.., 0<octal>, десятичные,
// дробную часть и экспоненту. Хвост из букв (суффикс вида u32, f64)
// съедается без валидации и остаётся в тексте токена.
func (lx *Lexer) lexNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.Integer

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isHexDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isBinaryDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		default:
			// восьмеричный или просто ноль
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isOctalDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	} else {
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// Дробная часть требует цифру сразу после точки, иначе точка не наша.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDigit(b1) {
		kind = token.Float
		lx.cursor.Bump() // '.'
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}

		if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
			lx.cursor.Bump()
			if s := lx.cursor.Peek(); s == '+' || s == '-' {
				lx.cursor.Bump()
			}
			for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// суффикс
	for !lx.cursor.EOF() && isAlpha(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	text := lx.cursor.TextFrom(start)
	lx.stats.CharacterCount += uint64(len(text))

	tok := lx.makeToken(kind, start)
	tok.Text = lx.interner.InternBytes(text)
	lx.stats.LiteralCount++
	return tok
}
