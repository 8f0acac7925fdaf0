package token

// Kind represents the category of a source token.
type Kind uint16

const (
	// Unknown indicates an erroneous or unrecognized token.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Integer represents an integer literal token.
	Integer
	// Float represents a floating point literal token.
	Float
	// String represents a string literal token.
	String
	// Character represents a character literal token.
	Character
	// Boolean represents a boolean literal token.
	Boolean

	// Ident represents an identifier token.
	Ident

	// KwAuto represents the 'auto' keyword.
	KwAuto // auto
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwType represents the 'type' keyword.
	KwType // type
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %

	// Equal represents the assignment operator token.
	Equal // =
	// PlusEqual represents the plus assign operator token.
	PlusEqual // +=
	// MinusEqual represents the minus assign operator token.
	MinusEqual // -=
	// StarEqual represents the star assign operator token.
	StarEqual // *=
	// SlashEqual represents the slash assign operator token.
	SlashEqual // /=
	// PercentEqual represents the percent assign operator token.
	PercentEqual // %=

	// EqualEqual represents the equality operator token.
	EqualEqual // ==
	// BangEqual represents the inequality operator token.
	BangEqual // !=
	// Less represents the less-than operator token.
	Less // <
	// LessEqual represents the less-or-equal operator token.
	LessEqual // <=
	// Greater represents the greater-than operator token.
	Greater // >
	// GreaterEqual represents the greater-or-equal operator token.
	GreaterEqual // >=

	// AmpAmp represents the logical and operator token.
	AmpAmp // &&
	// PipePipe represents the logical or operator token.
	PipePipe // ||
	// Bang represents the logical not operator token.
	Bang // !

	// Amp represents the bitwise and operator token.
	Amp // &
	// Pipe represents the bitwise or operator token.
	Pipe // |
	// Caret represents the bitwise xor operator token.
	Caret // ^
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>

	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the arrow token.
	Arrow // ->
	// ColonColon represents the path separator token.
	ColonColon // ::
	// Colon represents the colon token.
	Colon // :
	// Question represents the question mark token.
	Question // ?
	// At represents the at sign token.
	At // @
	// Hash represents the hash sign token.
	Hash // #
	// Backslash represents the backslash token.
	Backslash // \

	// LineComment represents a '//' comment token.
	LineComment
	// BlockComment represents a '/* */' comment token.
	BlockComment

	// Whitespace represents a run of spaces or tabs (usually skipped).
	Whitespace
	// Newline represents a line break token (usually skipped).
	Newline

	kindCount
)

var spellings = [kindCount]string{
	Unknown:   "<unknown>",
	EOF:       "<eof>",
	Integer:   "<integer>",
	Float:     "<float>",
	String:    "<string>",
	Character: "<char>",
	Boolean:   "<bool>",
	Ident:     "<identifier>",

	KwAuto:     "auto",
	KwBreak:    "break",
	KwCase:     "case",
	KwConst:    "const",
	KwContinue: "continue",
	KwDefault:  "default",
	KwDo:       "do",
	KwElse:     "else",
	KwEnum:     "enum",
	KwExtern:   "extern",
	KwFalse:    "false",
	KwFor:      "for",
	KwFn:       "fn",
	KwIf:       "if",
	KwImport:   "import",
	KwLet:      "let",
	KwMod:      "mod",
	KwMut:      "mut",
	KwNull:     "null",
	KwReturn:   "return",
	KwStruct:   "struct",
	KwSwitch:   "switch",
	KwTrue:     "true",
	KwType:     "type",
	KwVar:      "var",
	KwWhile:    "while",

	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Percent: "%",

	Equal:        "=",
	PlusEqual:    "+=",
	MinusEqual:   "-=",
	StarEqual:    "*=",
	SlashEqual:   "/=",
	PercentEqual: "%=",

	EqualEqual:   "==",
	BangEqual:    "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",

	AmpAmp:   "&&",
	PipePipe: "||",
	Bang:     "!",

	Amp:   "&",
	Pipe:  "|",
	Caret: "^",
	Tilde: "~",
	Shl:   "<<",
	Shr:   ">>",

	PlusPlus:   "++",
	MinusMinus: "--",

	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Arrow:      "->",
	ColonColon: "::",
	Colon:      ":",
	Question:   "?",
	At:         "@",
	Hash:       "#",
	Backslash:  `\`,

	LineComment:  "//",
	BlockComment: "/* */",
	Whitespace:   "<whitespace>",
	Newline:      "<newline>",
}

var names = [kindCount]string{
	Unknown:   "Unknown",
	EOF:       "EndOfFile",
	Integer:   "Integer",
	Float:     "Float",
	String:    "String",
	Character: "Character",
	Boolean:   "Boolean",
	Ident:     "Identifier",

	KwAuto:     "Auto",
	KwBreak:    "Break",
	KwCase:     "Case",
	KwConst:    "Const",
	KwContinue: "Continue",
	KwDefault:  "Default",
	KwDo:       "Do",
	KwElse:     "Else",
	KwEnum:     "Enum",
	KwExtern:   "Extern",
	KwFalse:    "False",
	KwFor:      "For",
	KwFn:       "Fn",
	KwIf:       "If",
	KwImport:   "Import",
	KwLet:      "Let",
	KwMod:      "Mod",
	KwMut:      "Mut",
	KwNull:     "Null",
	KwReturn:   "Return",
	KwStruct:   "Struct",
	KwSwitch:   "Switch",
	KwTrue:     "True",
	KwType:     "Type",
	KwVar:      "Var",
	KwWhile:    "While",

	Plus:    "Plus",
	Minus:   "Minus",
	Star:    "Star",
	Slash:   "Slash",
	Percent: "Percent",

	Equal:        "Equal",
	PlusEqual:    "PlusEqual",
	MinusEqual:   "MinusEqual",
	StarEqual:    "StarEqual",
	SlashEqual:   "SlashEqual",
	PercentEqual: "PercentEqual",

	EqualEqual:   "EqualEqual",
	BangEqual:    "BangEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",

	AmpAmp:   "AmpAmp",
	PipePipe: "PipePipe",
	Bang:     "Bang",

	Amp:   "Amp",
	Pipe:  "Pipe",
	Caret: "Caret",
	Tilde: "Tilde",
	Shl:   "Shl",
	Shr:   "Shr",

	PlusPlus:   "PlusPlus",
	MinusMinus: "MinusMinus",

	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	Dot:        "Dot",
	Arrow:      "Arrow",
	ColonColon: "ColonColon",
	Colon:      "Colon",
	Question:   "Question",
	At:         "At",
	Hash:       "Hash",
	Backslash:  "Backslash",

	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
}

// Spelling returns the concrete source text of fixed tokens and a
// <placeholder> for variable ones.
func (k Kind) Spelling() string {
	if k >= kindCount {
		return "<invalid>"
	}
	return spellings[k]
}

// String returns the debug name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "Invalid"
	}
	return names[k]
}

// IsKeyword reports whether the kind is a language keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwAuto && k <= KwWhile
}

// IsLiteral reports whether the kind is a literal.
func (k Kind) IsLiteral() bool {
	return k >= Integer && k <= Boolean
}

// IsOperator reports whether the kind is an operator.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= MinusMinus
}

// IsPunctuation reports whether the kind is punctuation.
func (k Kind) IsPunctuation() bool {
	return k >= LParen && k <= Backslash
}

// IsTrivia reports whether the kind is a comment, whitespace, or newline
// token that scanners normally skip.
func (k Kind) IsTrivia() bool {
	return k >= LineComment && k <= Newline
}
