package macroscan

// Token is the marker a rule reports on success.
type Token string

// Undefined is reported when a rule does not match.
const Undefined Token = ""

const directive = "#define"

// Rule recognizes `#define NAME VALUE`.
type Rule struct {
	token Token
	tabs  bool
}

// RuleOption configures a Rule.
type RuleOption func(*Rule)

// WithTabSeparators lets tabs separate the directive, the name and the value.
// By default only spaces do.
func WithTabSeparators() RuleOption {
	return func(r *Rule) {
		r.tabs = true
	}
}

// NewMacroValueRule creates a rule that reports token on success.
func NewMacroValueRule(token Token, opts ...RuleOption) *Rule {
	r := &Rule{token: token}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Token returns the success token.
func (r *Rule) Token() Token {
	return r.token
}

// Evaluate tries to match at the scanner's position. On success the scanner
// is left after the value and the success token is returned; otherwise the
// scanner is restored and Undefined is returned.
func (r *Rule) Evaluate(s CharacterScanner) Token {
	cp := newCheckpoint(s)
	if r.match(cp) {
		return r.token
	}
	cp.rollback()
	return Undefined
}

func (r *Rule) match(cp *checkpoint) bool {
	for _, want := range directive {
		if cp.read() != want {
			return false
		}
	}
	if !r.whitespace(cp) || !identifier(cp) || !r.whitespace(cp) {
		return false
	}
	if identifier(cp) {
		return true
	}
	if cp.read() != '(' {
		cp.unread()
	}
	return number(cp)
}

// whitespace consumes one or more separators.
func (r *Rule) whitespace(cp *checkpoint) bool {
	n := 0
	for r.isWhitespace(cp.read()) {
		n++
	}
	cp.unread()
	return n > 0
}

func (r *Rule) isWhitespace(ch rune) bool {
	return ch == ' ' || (r.tabs && ch == '\t')
}

// identifier consumes [A-Za-z_][A-Za-z0-9_]*.
func identifier(cp *checkpoint) bool {
	if !isIdentifierStart(cp.read()) {
		cp.unread()
		return false
	}
	for isIdentifierChar(cp.read()) {
	}
	cp.unread()
	return true
}

// number consumes one or more decimal digits.
func number(cp *checkpoint) bool {
	n := 0
	for isDigit(cp.read()) {
		n++
	}
	cp.unread()
	return n > 0
}

func isIdentifierStart(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentifierChar(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
