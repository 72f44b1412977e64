// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: loading
// settings files, resolving toolchain options and reporting the result,
// decoupled from any specific entrypoint like a CLI.
package app
