package calc

// Resolve returns a copy of toks with a multiplication inserted between each
// pair of adjacent operands that have no operator between them, e.g. the
// tokens of "2(3)" become those of "2x(3)".
func Resolve(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i, t := range toks {
		if i > 0 && impliesMul(toks[i-1], t) {
			out = append(out, Operator(OpMul))
		}
		out = append(out, t)
	}
	return out
}

// impliesMul tells whether prev followed directly by next is a product.
func impliesMul(prev, next Token) bool {
	switch prev.Kind {
	case KindNumber:
		return next.Kind == KindOpen || next.Kind == KindConstant || next.Kind == KindFunction
	case KindClose:
		return next.Kind == KindNumber || next.Kind == KindConstant || next.Kind == KindOpen || next.Kind == KindFunction
	case KindConstant:
		return next.Kind == KindNumber || next.Kind == KindOpen || next.Kind == KindFunction
	case KindFunction:
		// A function not followed by its argument group is malformed. The
		// product keeps evaluation defined; it fails for lack of an operand.
		return next.Kind != KindOpen
	default:
		return false
	}
}
