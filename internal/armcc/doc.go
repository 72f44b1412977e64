// Package armcc holds the ARM Compiler specific part of option resolution:
// the Synthesizer that computes an option's value from the build settings,
// and the Strategy bundle the registry hands out per toolchain.
//
// Both ARM Compiler 5 and ARM Compiler 6 are served by the same rules. Where
// the generations disagree (endian identifiers, language dialect identifiers,
// FPU suffixes, the obsolete --C99 flag) the Request's Generation decides.
package armcc
