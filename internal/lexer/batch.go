package lexer

import (
	"mlc/internal/diag"
	"mlc/internal/source"
	"mlc/internal/token"
)

// Эвристика плотности: примерно один токен на 7 байт исходника.
const tokenDensity = 7

// TokenizeFile прогоняет файл целиком и возвращает все токены,
// включая завершающий EOF.
func TokenizeFile(file *source.File, interner *source.Interner, reporter diag.Reporter, opts Options) []token.Token {
	lx := New(file, interner, reporter, opts)
	tokens := make([]token.Token, 0, len(file.Content)/tokenDensity+64)
	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// TokenizeString токенизирует строку через временный source.Manager.
// Удобно для тестов и REPL-путей; name попадает в виртуальный файл.
func TokenizeString(name, src string, interner *source.Interner, reporter diag.Reporter, opts Options) ([]token.Token, error) {
	m := source.NewManager(nil)
	id, err := m.AddVirtual(name, []byte(src))
	if err != nil {
		return nil, err
	}
	return TokenizeFile(m.File(id), interner, reporter, opts), nil
}

// Stream токенизирует файл, отдавая токены в callback по одному,
// без накопления среза. Возвращает статистику прогона.
func Stream(file *source.File, interner *source.Interner, reporter diag.Reporter, opts Options, fn func(token.Token)) Stats {
	lx := New(file, interner, reporter, opts)
	for {
		tok := lx.NextToken()
		fn(tok)
		if tok.Kind == token.EOF {
			return lx.Stats()
		}
	}
}
