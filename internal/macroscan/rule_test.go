package macroscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const macroValue Token = "macro_value"

func TestRule_Evaluate(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		tabs      bool
		matched   bool
		endOffset int
		nextRune  rune
	}{
		{name: "identifier value", input: "#define FOO BAR", matched: true, endOffset: 15, nextRune: EOF},
		{name: "numeric value", input: "#define FOO 123", matched: true, endOffset: 15, nextRune: EOF},
		{name: "parenthesized number", input: "#define FOO (123)", matched: true, endOffset: 16, nextRune: ')'},
		{name: "extra spaces", input: "#define   FOO    BAR // note", matched: true, endOffset: 20, nextRune: ' '},
		{name: "value followed by text", input: "#define X y+1", matched: true, endOffset: 11, nextRune: '+'},
		{name: "lowercase z starts identifier", input: "#define zeta zulu", matched: true, endOffset: 17, nextRune: EOF},
		{name: "underscore names", input: "#define _A __B9", matched: true, endOffset: 15, nextRune: EOF},
		{name: "tab separators enabled", input: "#define\tFOO\t1", tabs: true, matched: true, endOffset: 13, nextRune: EOF},

		{name: "directive only", input: "#define"},
		{name: "directive then space", input: "#define "},
		{name: "name missing", input: "#define 1FOO BAR"},
		{name: "value missing", input: "#define FOO"},
		{name: "value missing after space", input: "#define FOO "},
		{name: "paren without digits", input: "#define FOO (BAR"},
		{name: "paren at end", input: "#define FOO ("},
		{name: "two parens", input: "#define FOO ((1"},
		{name: "string value", input: `#define FOO "bar"`},
		{name: "no separator after directive", input: "#defineFOO BAR"},
		{name: "other directive", input: "#include <stdio.h>"},
		{name: "partial directive", input: "#defin FOO BAR"},
		{name: "tab after directive by default", input: "#define\tFOO BAR"},
		{name: "tab after name by default", input: "#define FOO\tBAR"},
		{name: "empty input", input: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []RuleOption
			if tc.tabs {
				opts = append(opts, WithTabSeparators())
			}
			rule := NewMacroValueRule(macroValue, opts...)
			s := NewStringScanner(tc.input)

			tok := rule.Evaluate(s)

			if !tc.matched {
				assert.Equal(t, Undefined, tok)
				assert.Equal(t, 0, s.Offset(), "scanner must be restored to the start")
				return
			}
			assert.Equal(t, macroValue, tok)
			assert.Equal(t, tc.endOffset, s.Offset())
			assert.Equal(t, tc.nextRune, s.Read())
		})
	}
}

// The directive separator has always been the space character alone. These
// cases pin that behaviour and the opt-in alternative.
func TestRule_TabSeparators(t *testing.T) {
	input := "#define\tFOO\tBAR"

	s := NewStringScanner(input)
	assert.Equal(t, Undefined, NewMacroValueRule(macroValue).Evaluate(s))
	assert.Equal(t, 0, s.Offset())

	s = NewStringScanner(input)
	assert.Equal(t, macroValue, NewMacroValueRule(macroValue, WithTabSeparators()).Evaluate(s))
	assert.Equal(t, len(input), s.Offset())
}

func TestRule_EvaluateMidStream(t *testing.T) {
	s := NewStringScanner("x #define FOO (")
	s.Read()
	s.Read()
	require.Equal(t, 2, s.Offset())

	assert.Equal(t, Undefined, NewMacroValueRule(macroValue).Evaluate(s))
	assert.Equal(t, 2, s.Offset())
}

func TestRule_Token(t *testing.T) {
	assert.Equal(t, macroValue, NewMacroValueRule(macroValue).Token())
}

// countingScanner tracks unbalanced reads to prove failures unread exactly
// what they read.
type countingScanner struct {
	*StringScanner
	reads, unreads int
}

func (c *countingScanner) Read() rune { c.reads++; return c.StringScanner.Read() }
func (c *countingScanner) Unread()    { c.unreads++; c.StringScanner.Unread() }

func TestRule_BalancedPushback(t *testing.T) {
	inputs := []string{"#define", "#define FOO", "#define FOO (", "#define\tFOO 1", "#def"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			c := &countingScanner{StringScanner: NewStringScanner(in)}
			assert.Equal(t, Undefined, NewMacroValueRule(macroValue).Evaluate(c))
			assert.Equal(t, c.reads, c.unreads)
		})
	}
}
