package macroscan

import "strings"

// Match is a recognized definition.
type Match struct {
	// Line is 1-based.
	Line int `json:"line"`
	// Offset and Length are measured in runes.
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Text   string `json:"text"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// FindAll applies rule at every position of text and returns the matches in
// order. Scanning resumes after each match.
func FindAll(text string, rule *Rule) []Match {
	s := NewStringScanner(text)
	runes := s.runes

	var matches []Match
	line := 1
	for s.Offset() < s.Len() {
		start := s.Offset()
		if rule.Evaluate(s) != Undefined {
			matched := string(runes[start:s.Offset()])
			m := Match{Line: line, Offset: start, Length: s.Offset() - start, Text: matched}
			m.Name, m.Value = split(matched)
			matches = append(matches, m)
			line += strings.Count(matched, "\n")
			continue
		}
		if s.Read() == '\n' {
			line++
		}
	}
	return matches
}

// split extracts name and value from a matched definition.
func split(matched string) (string, string) {
	fields := strings.Fields(strings.TrimPrefix(matched, directive))
	if len(fields) < 2 {
		return "", ""
	}
	return fields[0], strings.TrimPrefix(fields[1], "(")
}
