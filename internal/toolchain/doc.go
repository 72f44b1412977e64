// Package toolchain detects which ARM Compiler generation a build
// configuration targets.
package toolchain
