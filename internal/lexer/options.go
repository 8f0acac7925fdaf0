package lexer

// Options управляет тем, какие токены лексер выдаёт наружу и какие
// быстрые пути он использует.
type Options struct {
	// RetainComments keeps LineComment/BlockComment tokens in the stream.
	RetainComments bool
	// RetainWhitespace keeps Whitespace/Newline tokens in the stream.
	RetainWhitespace bool
	// AllowUnicodeIdentifiers permits non-ASCII letters in identifiers.
	AllowUnicodeIdentifiers bool

	// EnableLookupTables routes character classification through charClass.
	EnableLookupTables bool
	// EnableFastPath checks identifier and digit starts before trivia in the
	// dispatch. Token streams are identical either way.
	EnableFastPath bool
}

// DefaultOptions возвращает настройки по умолчанию: триция пропускается,
// Unicode в идентификаторах разрешён.
func DefaultOptions() Options {
	return Options{
		AllowUnicodeIdentifiers: true,
		EnableLookupTables:      true,
		EnableFastPath:          true,
	}
}
