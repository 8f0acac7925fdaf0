package lexer

import "mlc/internal/diag"

// skipTrivia пропускает пробелы, переводы строк и комментарии одним
// проходом. Выставляет hadSpace, если хоть что-то было пропущено.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		c := lx.cursor.Peek()
		switch {
		case lx.whitespace(c):
			lx.skipWhitespace()
			lx.hadSpace = true
		case lx.newline(c):
			lx.handleNewline()
			lx.hadSpace = true
		case c == '/' && lx.cursor.PeekAt(1) == '/':
			lx.skipLineComment()
			lx.hadSpace = true
		case c == '/' && lx.cursor.PeekAt(1) == '*':
			lx.skipBlockComment()
			lx.hadSpace = true
		default:
			return
		}
	}
}

func (lx *Lexer) skipWhitespace() {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && lx.whitespace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.stats.CharacterCount += uint64(lx.cursor.Off - start)
}

// handleNewline потребляет '\n', '\r' или пару "\r\n" и продвигает
// счётчик строк.
func (lx *Lexer) handleNewline() {
	start := lx.cursor.Off
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Eat('\n')
	}
	lx.stats.CharacterCount += uint64(lx.cursor.Off - start)
	lx.line++
	lx.lineStart = lx.cursor.Off
}

// bumpNewline потребляет перевод строки без учёта статистики: вызывающий
// считает байты спана сам.
func (lx *Lexer) bumpNewline() {
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Eat('\n')
	}
	lx.line++
	lx.lineStart = lx.cursor.Off
}

func (lx *Lexer) skipLineComment() {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	start := lx.cursor.Off
	for !lx.cursor.EOF() && !isNewline(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.stats.CharacterCount += 2 + uint64(lx.cursor.Off-start)
}

// skipBlockComment пропускает '/* ... */'. Переводы строк внутри
// комментария продвигают счётчик строк. Незакрытый комментарий
// обрезается на EOF с диагностикой.
func (lx *Lexer) skipBlockComment() {
	open := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.stats.CharacterCount += uint64(lx.cursor.Off - uint32(open))
			return
		}
		if isNewline(lx.cursor.Peek()) {
			lx.bumpNewline()
		} else {
			lx.cursor.Bump()
		}
	}
	lx.stats.CharacterCount += uint64(lx.cursor.Off - uint32(open))
	lx.report(diag.UnterminatedBlockComment, lx.cursor.LocAt(uint32(open)))
}
