// Package config defines the format-agnostic model of a settings file: the
// build configurations whose toolchain options are to be resolved, along with
// the Loader interface that format-specific adapters implement.
//
// The `config.Model` is the single source of truth for the `resolver`
// package. Concrete loaders for HCL and YAML live in separate packages and
// are combined by a Dispatcher that routes files by extension.
package config
