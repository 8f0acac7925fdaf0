package lexer

import (
	"fmt"

	"mlc/internal/diag"
	"mlc/internal/token"
)

// singleCharTokens — таблица односимвольных операторов и пунктуации.
var singleCharTokens = func() [128]token.Kind {
	var t [128]token.Kind
	t['+'] = token.Plus
	t['-'] = token.Minus
	t['*'] = token.Star
	t['/'] = token.Slash
	t['%'] = token.Percent
	t['='] = token.Equal
	t['!'] = token.Bang
	t['<'] = token.Less
	t['>'] = token.Greater
	t['&'] = token.Amp
	t['|'] = token.Pipe
	t['^'] = token.Caret
	t['~'] = token.Tilde
	t['('] = token.LParen
	t[')'] = token.RParen
	t['{'] = token.LBrace
	t['}'] = token.RBrace
	t['['] = token.LBracket
	t[']'] = token.RBracket
	t[';'] = token.Semicolon
	t[','] = token.Comma
	t['.'] = token.Dot
	t[':'] = token.Colon
	t['?'] = token.Question
	t['@'] = token.At
	t['#'] = token.Hash
	t['\\'] = token.Backslash
	return t
}()

// lexOperator сканирует оператор или пунктуацию. Жадность: сначала
// двухсимвольные формы через ключ-пару, затем одиночный байт. Неожиданный
// байт даёт Unknown длиной 1 с диагностикой.
func (lx *Lexer) lexOperator() token.Token {
	start := lx.cursor.Mark()
	c := lx.cursor.Bump()
	lx.stats.CharacterCount++

	if !lx.cursor.EOF() {
		next := lx.cursor.Peek()
		pair := uint16(c)<<8 | uint16(next)

		var kind token.Kind
		switch pair {
		case pairKey('+', '='):
			kind = token.PlusEqual
		case pairKey('+', '+'):
			kind = token.PlusPlus
		case pairKey('-', '='):
			kind = token.MinusEqual
		case pairKey('-', '-'):
			kind = token.MinusMinus
		case pairKey('-', '>'):
			kind = token.Arrow
		case pairKey('*', '='):
			kind = token.StarEqual
		case pairKey('/', '='):
			kind = token.SlashEqual
		case pairKey('%', '='):
			kind = token.PercentEqual
		case pairKey('=', '='):
			kind = token.EqualEqual
		case pairKey('!', '='):
			kind = token.BangEqual
		case pairKey('<', '='):
			kind = token.LessEqual
		case pairKey('<', '<'):
			kind = token.Shl
		case pairKey('>', '='):
			kind = token.GreaterEqual
		case pairKey('>', '>'):
			kind = token.Shr
		case pairKey('&', '&'):
			kind = token.AmpAmp
		case pairKey('|', '|'):
			kind = token.PipePipe
		case pairKey(':', ':'):
			kind = token.ColonColon
		}
		if kind != token.Unknown {
			lx.cursor.Bump()
			lx.stats.CharacterCount++
			return lx.makeToken(kind, start)
		}
	}

	if c < 128 {
		if kind := singleCharTokens[c]; kind != token.Unknown {
			return lx.makeToken(kind, start)
		}
	}

	// Неожиданный символ: для непечатаемых показываем код, иначе сам символ.
	loc := lx.cursor.LocAt(uint32(start))
	if c < 32 || c >= 127 {
		lx.report(diag.UnexpectedValue, loc,
			"valid character (non-printable character)",
			fmt.Sprintf("character code: %d", c))
	} else {
		lx.report(diag.UnexpectedValue, loc, "valid character", string(c))
	}
	return lx.makeToken(token.Unknown, start)
}

func pairKey(a, b byte) uint16 { return uint16(a)<<8 | uint16(b) }
