// Package report renders resolution results, macro scan matches and the
// option classifier table for the command line, either as aligned text or
// as indented JSON.
package report
