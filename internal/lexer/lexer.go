package lexer

import (
	"time"

	"mlc/internal/diag"
	"mlc/internal/source"
	"mlc/internal/token"
)

// Lexer токенизирует один файл. Он однопоточный: для параллельной
// токенизации создаётся по экземпляру на файл, интернер и репортёр
// при этом можно разделять.
type Lexer struct {
	file     *source.File
	interner *source.Interner
	reporter diag.Reporter
	opts     Options
	cursor   Cursor

	// lineStart указывает на первый байт текущей строки, line считает строки
	// с единицы. Это продвигаемый счётчик, а не замена таблице строк файла.
	lineStart uint32
	line      uint32

	// 1-элементный буфер для PeekToken
	peeked *token.Token

	// hadSpace выставляется, когда перед токеном была пропущена триция
	hadSpace bool

	stats Stats
}

// New создаёт лексер для файла из source.Manager. reporter может быть nil —
// тогда диагностики молча отбрасываются, но лексер продолжает работу.
func New(file *source.File, interner *source.Interner, reporter diag.Reporter, opts Options) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:     file,
		interner: interner,
		reporter: reporter,
		opts:     opts,
		cursor:   NewCursor(file),
		line:     1,
	}
}

// NextToken возвращает следующий токен. После конца файла всегда
// возвращается EOF с локацией конца файла.
func (lx *Lexer) NextToken() token.Token {
	if lx.peeked != nil {
		tok := *lx.peeked
		lx.peeked = nil
		return tok
	}

	begin := time.Now()

	lx.hadSpace = false
	if !lx.opts.RetainWhitespace && !lx.opts.RetainComments {
		lx.skipTrivia()
	}

	if lx.cursor.EOF() {
		lx.stats.TokenCount++
		lx.stats.LexingTime += time.Since(begin)
		return token.New(token.EOF, lx.cursor.Loc(), 0)
	}

	// Точка возврата для защиты от зацикливания.
	startOff := lx.cursor.Off
	atStartOfLine := lx.cursor.Off == lx.lineStart

	c := lx.cursor.Peek()
	var tok token.Token
	var done bool
	if lx.opts.EnableFastPath {
		tok, done = lx.dispatchFast(c, begin)
	} else {
		tok, done = lx.dispatchSlow(c, begin)
	}
	if done {
		return tok
	}

	if atStartOfLine {
		tok.AddFlag(token.FlagAtStartOfLine)
	}
	if lx.hadSpace {
		tok.AddFlag(token.FlagHasLeadingSpace)
	}

	lx.stats.TokenCount++

	// Защита: позиция обязана продвинуться, иначе пропускаем байт.
	if lx.cursor.Off == startOff && !lx.cursor.EOF() {
		lx.cursor.Bump()
		lx.stats.CharacterCount++
	}

	lx.stats.LexingTime += time.Since(begin)
	return tok
}

// dispatchFast выбирает ветку сканирования, проверяя самые частые классы
// первыми: идентификаторы и числа до пробелов. Второй результат true
// означает, что токен уже финализирован рекурсией после тривии.
func (lx *Lexer) dispatchFast(c byte, begin time.Time) (token.Token, bool) {
	switch {
	case lx.alpha(c):
		return lx.lexIdentifier(), false

	case c >= 0x80 && lx.opts.AllowUnicodeIdentifiers:
		return lx.lexIdentifier(), false

	case lx.digit(c):
		return lx.lexNumber(), false

	case lx.whitespace(c):
		return lx.scanWhitespace(begin)

	case lx.newline(c):
		return lx.scanNewline(begin)

	case c == '"':
		return lx.lexString(), false

	case c == '\'':
		return lx.lexCharLiteral(), false

	case c == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		return lx.scanComment(begin)

	default:
		return lx.lexOperator(), false
	}
}

// dispatchSlow проверяет тривию первой: пробелы и переводы строк, затем
// идентификаторы. Результат совпадает с dispatchFast на любом входе,
// различается только порядок проверок.
func (lx *Lexer) dispatchSlow(c byte, begin time.Time) (token.Token, bool) {
	switch {
	case lx.whitespace(c):
		return lx.scanWhitespace(begin)

	case lx.newline(c):
		return lx.scanNewline(begin)

	case lx.alpha(c):
		return lx.lexIdentifier(), false

	case c >= 0x80 && lx.opts.AllowUnicodeIdentifiers:
		return lx.lexIdentifier(), false

	case lx.digit(c):
		return lx.lexNumber(), false

	case c == '"':
		return lx.lexString(), false

	case c == '\'':
		return lx.lexCharLiteral(), false

	case c == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		return lx.scanComment(begin)

	default:
		return lx.lexOperator(), false
	}
}

func (lx *Lexer) scanWhitespace(begin time.Time) (token.Token, bool) {
	if lx.opts.RetainWhitespace {
		start := lx.cursor.Mark()
		lx.skipWhitespace()
		return lx.makeToken(token.Whitespace, start), false
	}
	lx.skipWhitespace()
	lx.hadSpace = true
	return lx.nextAfterTrivia(begin), true
}

func (lx *Lexer) scanNewline(begin time.Time) (token.Token, bool) {
	if lx.opts.RetainWhitespace {
		start := lx.cursor.Mark()
		lx.handleNewline()
		return lx.makeToken(token.Newline, start), false
	}
	lx.handleNewline()
	lx.hadSpace = true
	return lx.nextAfterTrivia(begin), true
}

func (lx *Lexer) scanComment(begin time.Time) (token.Token, bool) {
	if lx.opts.RetainComments {
		return lx.lexComment(), false
	}
	if lx.cursor.PeekAt(1) == '/' {
		lx.skipLineComment()
	} else {
		lx.skipBlockComment()
	}
	lx.hadSpace = true
	return lx.nextAfterTrivia(begin), true
}

// nextAfterTrivia продолжает сканирование после пропущенной триции,
// сохраняя накопленное время и флаг hadSpace.
func (lx *Lexer) nextAfterTrivia(begin time.Time) token.Token {
	hadSpace := lx.hadSpace
	lx.stats.LexingTime += time.Since(begin)
	tok := lx.NextToken()
	if hadSpace && tok.Kind != token.EOF {
		tok.AddFlag(token.FlagHasLeadingSpace)
	}
	return tok
}

// PeekToken возвращает следующий токен, не потребляя его.
func (lx *Lexer) PeekToken() token.Token {
	if lx.peeked == nil {
		t := lx.NextToken()
		lx.peeked = &t
	}
	return *lx.peeked
}

// IsAtEnd сообщает, достигнут ли конец файла.
func (lx *Lexer) IsAtEnd() bool { return lx.cursor.EOF() }

// File возвращает токенизируемый файл.
func (lx *Lexer) File() *source.File { return lx.file }

// Options возвращает настройки лексера.
func (lx *Lexer) Options() Options { return lx.opts }

// CurrentLoc возвращает глобальную локацию текущей позиции.
func (lx *Lexer) CurrentLoc() source.Loc { return lx.cursor.Loc() }

// CurrentLine возвращает продвигаемый номер строки (1-based).
func (lx *Lexer) CurrentLine() uint32 { return lx.line }

// CurrentColumn возвращает колонку текущей позиции (1-based).
func (lx *Lexer) CurrentColumn() uint32 { return lx.cursor.Off - lx.lineStart + 1 }

// SkipToEndOfLine пропускает всё до ближайшего перевода строки.
func (lx *Lexer) SkipToEndOfLine() {
	for !lx.cursor.EOF() && !lx.newline(lx.cursor.Peek()) {
		lx.cursor.Bump()
		lx.stats.CharacterCount++
	}
}

// Reset возвращает лексер к началу файла и обнуляет статистику.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.file)
	lx.lineStart = 0
	lx.line = 1
	lx.peeked = nil
	lx.hadSpace = false
	lx.stats = Stats{}
}

// makeToken создаёт токен от метки до текущей позиции курсора.
func (lx *Lexer) makeToken(kind token.Kind, start Mark) token.Token {
	return token.New(kind, lx.cursor.LocAt(uint32(start)), lx.cursor.Off-uint32(start))
}

func (lx *Lexer) report(id diag.ID, loc source.Loc, args ...string) {
	lx.reporter.Report(id, loc, args...)
}

// Классификация с уважением к EnableLookupTables: без таблицы
// используется прямое сравнение диапазонов, как и раньше.

func (lx *Lexer) alpha(b byte) bool {
	if lx.opts.EnableLookupTables {
		return isAlpha(b)
	}
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (lx *Lexer) digit(b byte) bool {
	if lx.opts.EnableLookupTables {
		return isDigit(b)
	}
	return b >= '0' && b <= '9'
}

func (lx *Lexer) whitespace(b byte) bool {
	if lx.opts.EnableLookupTables {
		return isWhitespace(b)
	}
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func (lx *Lexer) newline(b byte) bool {
	if lx.opts.EnableLookupTables {
		return isNewline(b)
	}
	return b == '\n' || b == '\r'
}
