package lexer

import (
	"mlc/internal/token"
)

// lexIdentifier сканирует идентификатор или ключевое слово. Первый символ
// уже проверен диспетчером. Ключевые слова регистрозависимые (только
// lowercase), их текст не интернируется: его задаёт сам Kind.
func (lx *Lexer) lexIdentifier() token.Token {
	start := lx.cursor.Mark()

	if b := lx.cursor.Peek(); b < utf8RuneSelf {
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b >= utf8RuneSelf && lx.opts.AllowUnicodeIdentifiers {
				r, _ := lx.peekRune()
				if !isIdentContinueRune(r) {
					break
				}
				lx.bumpRune()
				continue
			}
			if !isAlnum(b) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		// Unicode-идентификатор
		r, _ := lx.peekRune()
		if !isIdentStartRune(r) {
			return lx.lexOperator()
		}
		lx.bumpRune()
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b < utf8RuneSelf {
				if !isAlnum(b) {
					break
				}
				lx.cursor.Bump()
				continue
			}
			r, _ := lx.peekRune()
			if !isIdentContinueRune(r) {
				break
			}
			lx.bumpRune()
		}
	}

	text := lx.cursor.TextFrom(start)
	lx.stats.CharacterCount += uint64(len(text))

	tok := lx.makeToken(token.Ident, start)
	if kind, ok := token.LookupKeyword(string(text)); ok {
		tok.Kind = kind
		tok.AddFlag(token.FlagIsKeyword)
		lx.stats.KeywordCount++
		return tok
	}

	tok.Text = lx.interner.InternBytes(text)
	lx.stats.IdentifierCount++
	return tok
}
