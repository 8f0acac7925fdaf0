package driver

import (
	"errors"

	"mlc/internal/diag"
	"mlc/internal/diagfmt"
	"mlc/internal/fileman"
	"mlc/internal/lexer"
	"mlc/internal/observ"
	"mlc/internal/source"
	"mlc/internal/token"
)

// Options настраивает прогон токенизации.
type Options struct {
	// MaxDiagnostics ограничивает бюджет ошибок; 0 — без лимита.
	MaxDiagnostics int
	// WarningsAsErrors повышает warning до error.
	WarningsAsErrors bool
	// SuppressWarnings отбрасывает warning (кроме повышенных до error).
	SuppressWarnings bool
	// Lexer передаётся каждому создаваемому лексеру.
	Lexer lexer.Options
}

// DefaultOptions возвращает настройки по умолчанию.
func DefaultOptions() Options {
	return Options{Lexer: lexer.DefaultOptions()}
}

// TokenizeResult содержит всё состояние одного прогона: файлы, токены,
// интернер и диагностики.
type TokenizeResult struct {
	Sources   *source.Manager
	Interner  *source.Interner
	File      *source.File
	Tokens    []token.Token
	Bag       *diag.Bag
	DiagStats diag.Stats
	Stats     lexer.Stats
	Timing    observ.Report
}

// newDiagManager строит менеджер диагностик с политикой из opts,
// складывающий всё непогашенное в bag.
func newDiagManager(opts Options, bag *diag.Bag) *diag.Manager {
	m := diag.NewManager()
	m.SetWarningsAsErrors(opts.WarningsAsErrors)
	m.SetSuppressWarnings(opts.SuppressWarnings)
	if opts.MaxDiagnostics > 0 {
		m.SetMaxErrors(uint64(opts.MaxDiagnostics))
	}
	m.AddConsumer(diagfmt.NewCollector(bag))
	return m
}

// reportLoadError переводит ошибку загрузки файла в диагностику.
func reportLoadError(dm *diag.Manager, path string, err error) {
	if errors.Is(err, source.ErrSourceTooLarge) {
		dm.Report(diag.SourceTooLarge, source.NoLoc, path)
		return
	}
	dm.Report(diag.FileNotFound, source.NoLoc, path, err.Error())
}

// Tokenize загружает файл с диска и токенизирует его целиком.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	mgr := source.NewManager(fileman.New())
	interner := source.NewInterner()
	bag := diag.NewBag(0)
	dm := newDiagManager(opts, bag)
	timer := observ.NewTimer()

	loadPhase := timer.Begin("load")
	fileID, err := mgr.CreateFileID(path)
	if err != nil {
		timer.End(loadPhase, "failed")
		reportLoadError(dm, path, err)
		return &TokenizeResult{
			Sources:   mgr,
			Interner:  interner,
			Bag:       bag,
			DiagStats: dm.Stats(),
			Timing:    timer.Report(),
		}, err
	}
	file := mgr.File(fileID)
	timer.End(loadPhase, path)

	lexPhase := timer.Begin("lex")
	lx := lexer.New(file, interner, dm, opts.Lexer)
	tokens := make([]token.Token, 0, len(file.Content)/7+64)
	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || !dm.ShouldContinue() {
			break
		}
	}
	timer.End(lexPhase, "")

	return &TokenizeResult{
		Sources:   mgr,
		Interner:  interner,
		File:      file,
		Tokens:    tokens,
		Bag:       bag,
		DiagStats: dm.Stats(),
		Stats:     lx.Stats(),
		Timing:    timer.Report(),
	}, nil
}

// TokenizeSource токенизирует содержимое напрямую, без диска (stdin, тесты).
func TokenizeSource(name string, content []byte, opts Options) (*TokenizeResult, error) {
	mgr := source.NewManager(nil)
	interner := source.NewInterner()
	bag := diag.NewBag(0)
	dm := newDiagManager(opts, bag)

	fileID, err := mgr.AddVirtual(name, content)
	if err != nil {
		return nil, err
	}
	file := mgr.File(fileID)

	lx := lexer.New(file, interner, dm, opts.Lexer)
	var tokens []token.Token
	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || !dm.ShouldContinue() {
			break
		}
	}

	return &TokenizeResult{
		Sources:   mgr,
		Interner:  interner,
		File:      file,
		Tokens:    tokens,
		Bag:       bag,
		DiagStats: dm.Stats(),
		Stats:     lx.Stats(),
	}, nil
}
