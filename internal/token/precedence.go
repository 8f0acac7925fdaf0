package token

// Binary operator precedence, higher binds tighter. 0 means not a binary
// operator.
var precedence = [kindCount]int8{
	Star:    14,
	Slash:   14,
	Percent: 14,

	Plus:  13,
	Minus: 13,

	Shl: 12,
	Shr: 12,

	Less:         11,
	LessEqual:    11,
	Greater:      11,
	GreaterEqual: 11,

	EqualEqual: 10,
	BangEqual:  10,

	Amp:   9,
	Caret: 8,
	Pipe:  7,

	AmpAmp:   6,
	PipePipe: 5,

	Equal:        2,
	PlusEqual:    2,
	MinusEqual:   2,
	StarEqual:    2,
	SlashEqual:   2,
	PercentEqual: 2,
}

// Precedence returns the binary operator precedence of the kind, 0 when the
// kind is not a binary operator.
func (k Kind) Precedence() int {
	if k >= kindCount {
		return 0
	}
	return int(precedence[k])
}

// IsAssignOp reports whether the kind is an assignment operator.
func (k Kind) IsAssignOp() bool {
	return k >= Equal && k <= PercentEqual
}

// IsRightAssociative reports whether the operator groups right to left.
// Только присваивания правоассоциативны.
func (k Kind) IsRightAssociative() bool {
	return k.IsAssignOp()
}

// IsLeftAssociative reports whether the operator groups left to right.
func (k Kind) IsLeftAssociative() bool {
	return k.Precedence() > 0 && !k.IsAssignOp()
}
