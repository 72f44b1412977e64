// Package resolver drives a resolution pass: for every option slot of a
// build configuration it asks the toolchain strategy to classify the slot,
// decide whether its list must be cleared, and synthesize its new value.
//
// All state of a pass lives in an immutable Context built once per
// configuration, so independent configurations can be resolved in parallel.
package resolver
