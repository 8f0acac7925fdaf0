package lexer

import (
	"mlc/internal/diag"
	"mlc/internal/token"
)

// lexCharLiteral сканирует '...'. Пустой литерал '' и незакрытый литерал
// дают диагностику, но токен всё равно выдаётся: парсер сможет
// восстановиться.
func (lx *Lexer) lexCharLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая '\''

	hasEscape := false
	empty := true

	if !lx.cursor.EOF() && lx.cursor.Peek() != '\'' {
		empty = false
		if lx.cursor.Peek() == '\\' {
			hasEscape = true
			lx.cursor.Bump()
			lx.skipEscapeBody()
		} else {
			lx.cursor.Bump()
		}
	}

	switch {
	case lx.cursor.EOF() || lx.cursor.Peek() != '\'':
		lx.report(diag.UnterminatedCharacterLiteral, lx.cursor.LocAt(uint32(start)))
	default:
		lx.cursor.Bump() // закрывающая '\''
		if empty {
			lx.report(diag.EmptyCharacterLiteral, lx.cursor.LocAt(uint32(start)))
		}
	}

	text := lx.cursor.TextFrom(start)
	lx.stats.CharacterCount += uint64(len(text))

	tok := lx.makeToken(token.Character, start)
	if hasEscape {
		tok.AddFlag(token.FlagNeedsCleaning)
	}
	tok.Text = lx.interner.InternBytes(text)
	lx.stats.LiteralCount++
	return tok
}
