// Package calc implements the expression engine of the calculator.
//
// An expression is the text typed on the calculator keypad, e.g. "2(3+4)÷sin(1)".
// Evaluation runs in four steps: Tokenize splits the text into tokens, Resolve
// inserts the multiplications implied by writing two operands side by side,
// an Evaluator reduces the tokens with a value stack and an operator stack, and
// Format renders the number the way the display shows it.
//
// The grammar is lenient. Runes that are not part of any token are dropped, and
// "-" directly before a digit is a sign unless it follows a number or a closing
// parenthesis. The "%" glyph is a modulo operator when it sits between two
// number literals and a percent operator everywhere else.
package calc
