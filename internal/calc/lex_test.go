package calc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src   string
		spans []Span
	}{
		{"", nil},
		{"12+3.5", []Span{
			{Token: Number(12), Start: 0, End: 2},
			{Token: Operator(OpAdd), Start: 2, End: 3},
			{Token: Number(3.5), Start: 3, End: 6},
		}},
		// sign or subtraction
		{"-5", []Span{{Token: Number(-5), Start: 0, End: 2}}},
		{"5-3", []Span{
			{Token: Number(5), Start: 0, End: 1},
			{Token: Operator(OpSub), Start: 1, End: 2},
			{Token: Number(3), Start: 2, End: 3},
		}},
		{"5x-3", []Span{
			{Token: Number(5), Start: 0, End: 1},
			{Token: Operator(OpMul), Start: 1, End: 2},
			{Token: Number(-3), Start: 2, End: 4},
		}},
		{"(2)-1", []Span{
			{Token: openToken, Start: 0, End: 1},
			{Token: Number(2), Start: 1, End: 2},
			{Token: closeToken, Start: 2, End: 3},
			{Token: Operator(OpSub), Start: 3, End: 4},
			{Token: Number(1), Start: 4, End: 5},
		}},
		// group literals
		{"(-5)", []Span{{Token: Number(-5), Start: 0, End: 4, Group: true}}},
		{"(-1.25)", []Span{{Token: Number(-1.25), Start: 0, End: 7, Group: true}}},
		{"(-5+1)", []Span{
			{Token: openToken, Start: 0, End: 1},
			{Token: Number(-5), Start: 1, End: 3},
			{Token: Operator(OpAdd), Start: 3, End: 4},
			{Token: Number(1), Start: 4, End: 5},
			{Token: closeToken, Start: 5, End: 6},
		}},
		// keywords
		{"sin(", []Span{
			{Token: Function("sin"), Start: 0, End: 3},
			{Token: openToken, Start: 3, End: 4},
		}},
		{"asin", []Span{{Token: Function("asin"), Start: 0, End: 4}}},
		{"7 mod 2", []Span{
			{Token: Number(7), Start: 0, End: 1},
			{Token: Operator(OpMod), Start: 2, End: 5},
			{Token: Number(2), Start: 6, End: 7},
		}},
		{"2π", []Span{
			{Token: Number(2), Start: 0, End: 1},
			{Token: piToken, Start: 1, End: 3},
		}},
		{"8÷2", []Span{
			{Token: Number(8), Start: 0, End: 1},
			{Token: Operator(OpDiv), Start: 1, End: 3},
			{Token: Number(2), Start: 3, End: 4},
		}},
		// dropped runes
		{"1a2", []Span{
			{Token: Number(1), Start: 0, End: 1},
			{Token: Number(2), Start: 2, End: 3},
		}},
		{"5.", []Span{{Token: Number(5), Start: 0, End: 1}}},
		{"\xff!", []Span{{Token: Operator(OpFact), Start: 1, End: 2}}},
	}
	for _, c := range cases {
		got := Lex(c.src)
		if diff := cmp.Diff(c.spans, got); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestTokenize(t *testing.T) {
	pct := Operator(OpPercent)

	cases := []struct {
		src  string
		toks []Token
	}{
		{"5%3", []Token{Number(5), Operator(OpMod), Number(3)}},
		{"2+3%", []Token{Number(2), Operator(OpAdd), Number(3), pct}},
		{"(1+2)%", []Token{openToken, Number(1), Operator(OpAdd), Number(2), closeToken, pct}},
		{"(-5)", []Token{openToken, Number(-5), closeToken}},
		{"5%%3", []Token{Number(5), pct, pct, Number(3)}},
		{"5%(-3)", []Token{Number(5), pct, openToken, Number(-3), closeToken}},
		{"π%2", []Token{piToken, pct, Number(2)}},
		{"%", []Token{pct}},
	}
	for _, c := range cases {
		got := Tokenize(c.src)
		if diff := cmp.Diff(c.toks, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", c.src, diff)
		}
	}
}
