// Package linkerscript generates linker scripts from a device's memory map.
// Each toolchain selects its Generator once through the toolchain registry;
// ARM Compiler uses armlink scatter files.
package linkerscript
