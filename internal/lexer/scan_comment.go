package lexer

import (
	"mlc/internal/diag"
	"mlc/internal/token"
)

// lexComment сканирует '//...' или '/*...*/' как токен (RetainComments).
// Незакрытый блочный комментарий обрезается на EOF: токен выдаётся,
// диагностика репортится.
func (lx *Lexer) lexComment() token.Token {
	start := lx.cursor.Mark()

	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		// одиночный '/' в конце файла сюда не попадает, но перестрахуемся
		return lx.lexOperator()
	}

	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/' или '*'

	if b1 == '/' {
		for !lx.cursor.EOF() && !isNewline(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.noteComment(start)
		return lx.makeToken(token.LineComment, start)
	}

	for !lx.cursor.EOF() {
		c0, c1, ok := lx.cursor.Peek2()
		if ok && c0 == '*' && c1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.noteComment(start)
			return lx.makeToken(token.BlockComment, start)
		}
		if isNewline(lx.cursor.Peek()) {
			lx.bumpNewline()
		} else {
			lx.cursor.Bump()
		}
	}

	lx.report(diag.UnterminatedBlockComment, lx.cursor.LocAt(uint32(start)))
	lx.noteComment(start)
	return lx.makeToken(token.BlockComment, start)
}

func (lx *Lexer) noteComment(start Mark) {
	lx.stats.CharacterCount += uint64(lx.cursor.Off - uint32(start))
	lx.stats.CommentCount++
}
