// Package macroscan recognizes `#define NAME VALUE` statements in a
// character stream, where VALUE is a C identifier or a decimal number that
// may be preceded by a single '('.
//
// A Rule reads from a CharacterScanner and either accepts, leaving the
// scanner after the value, or declines and restores the scanner to where it
// started, so that other rules can be tried at the same position.
package macroscan
