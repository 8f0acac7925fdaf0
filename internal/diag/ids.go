package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// ID uniquely identifies a diagnostic definition.
type ID uint16

const (
	// UnknownDiag - на первое время, для нераспознанных ситуаций.
	UnknownDiag ID = iota

	// Системные
	FileNotFound
	SourceTooLarge
	TooManyErrors

	// Лексические
	UnexpectedValue
	UnterminatedStringLiteral
	UnterminatedCharacterLiteral
	UnterminatedBlockComment
	InvalidEscapeSequence
	EmptyCharacterLiteral

	numDiagnostics
)

// Info is the static definition of a diagnostic: its level, category, and
// message templates. %0, %1 in templates are replaced with arguments.
type Info struct {
	Level    Level
	Category Category
	Short    string
	Detail   string
}

var infos = [numDiagnostics]Info{
	UnknownDiag: {Error, CatSystem, "unknown error", "an unknown error occurred"},

	FileNotFound:   {Fatal, CatSystem, "file not found", "cannot open source file '%0': %1"},
	SourceTooLarge: {Fatal, CatSystem, "source too large", "source file '%0' does not fit the 32-bit location space"},
	TooManyErrors:  {Fatal, CatSystem, "too many errors", "too many errors emitted, stopping now"},

	UnexpectedValue:              {Error, CatLexical, "unexpected value", "expected %0, got '%1'"},
	UnterminatedStringLiteral:    {Error, CatLexical, "unterminated string", "missing terminating '\"' character"},
	UnterminatedCharacterLiteral: {Error, CatLexical, "unterminated character literal", "missing terminating \"'\" character"},
	UnterminatedBlockComment:     {Error, CatLexical, "unterminated block comment", "missing closing '*/'"},
	InvalidEscapeSequence:        {Warning, CatLexical, "invalid escape sequence", "unknown escape sequence '\\%0'"},
	EmptyCharacterLiteral:        {Error, CatLexical, "empty character literal", "character literal must contain a value"},
}

// GetInfo returns the definition of the diagnostic.
func GetInfo(id ID) Info {
	if id >= numDiagnostics {
		return infos[UnknownDiag]
	}
	return infos[id]
}

func (id ID) String() string {
	// Стабильная форма вида LEX0004 для машинного вывода.
	info := GetInfo(id)
	var prefix string
	switch info.Category {
	case CatSystem:
		prefix = "SYS"
	case CatLexical:
		prefix = "LEX"
	case CatSyntax:
		prefix = "SYN"
	case CatSemantic:
		prefix = "SEMA"
	case CatType:
		prefix = "TYPE"
	default:
		prefix = "DIAG"
	}
	return fmt.Sprintf("%s%04d", prefix, uint16(id))
}

// FormatMessage expands %0, %1, ... placeholders in template with args.
// Placeholders without a matching argument are left as-is.
func FormatMessage(template string, args []string) string {
	if len(args) == 0 || !strings.ContainsRune(template, '%') {
		return template
	}
	var sb strings.Builder
	sb.Grow(len(template) + 16)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '%' && i+1 < len(template) && template[i+1] >= '0' && template[i+1] <= '9' {
			idx, _ := strconv.Atoi(string(template[i+1]))
			if idx < len(args) {
				sb.WriteString(args[idx])
				i++
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
