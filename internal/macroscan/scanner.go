package macroscan

// EOF is returned by Read past the end of the input.
const EOF rune = -1

// CharacterScanner is a rune stream with single-step pushback.
type CharacterScanner interface {
	// Read returns the next rune, or EOF past the end of the input.
	Read() rune
	// Unread pushes back the rune returned by the last Read.
	Unread()
}

// StringScanner is a CharacterScanner over an in-memory string. Reads past
// the end keep advancing the offset so that every Read can be undone by an
// Unread.
type StringScanner struct {
	runes  []rune
	offset int
}

// NewStringScanner creates a scanner positioned at the start of text.
func NewStringScanner(text string) *StringScanner {
	return &StringScanner{runes: []rune(text)}
}

// Read implements CharacterScanner.
func (s *StringScanner) Read() rune {
	if s.offset >= len(s.runes) {
		s.offset++
		return EOF
	}
	ch := s.runes[s.offset]
	s.offset++
	return ch
}

// Unread implements CharacterScanner. Unreading at the start of the input
// panics.
func (s *StringScanner) Unread() {
	if s.offset == 0 {
		panic("macroscan: unread at start of input")
	}
	s.offset--
}

// Offset returns the current position in runes.
func (s *StringScanner) Offset() int {
	return s.offset
}

// Len returns the length of the input in runes.
func (s *StringScanner) Len() int {
	return len(s.runes)
}

// checkpoint records how far a match attempt has moved a scanner so the
// attempt can be undone as a whole.
type checkpoint struct {
	s        CharacterScanner
	consumed int
}

func newCheckpoint(s CharacterScanner) *checkpoint {
	return &checkpoint{s: s}
}

func (c *checkpoint) read() rune {
	c.consumed++
	return c.s.Read()
}

func (c *checkpoint) unread() {
	c.consumed--
	c.s.Unread()
}

// rollback returns the scanner to where the checkpoint was taken.
func (c *checkpoint) rollback() {
	for ; c.consumed > 0; c.consumed-- {
		c.s.Unread()
	}
}
