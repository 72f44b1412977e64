// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Kind, the closed set of toolchain options the engine knows
// how to produce a value for.

package option

import "fmt"

// Kind is the generation-independent category of a toolchain option slot.
type Kind int

const (
	// Unknown is the sentinel for identifiers the engine has no opinion on.
	Unknown Kind = iota

	// Lists accumulated from the build settings.
	Defines
	IncludePath
	LibraryPaths
	Libraries
	CMisc
	AsmMisc
	LinkerMisc

	// Flag fields the user edits directly.
	CMiscUser
	AsmMiscUser
	LinkerMiscUser
	ArchiverMiscUser

	LinkerScript
	Endian
	Arch
	CPU
	FPU

	// ARM Compiler specific kinds.
	AsmDefines
	EnableToolSpecific
	UseMicrolib
	CPUFPU
	C5LanguageMode
	CPP5LanguageMode
	C6LanguageMode
	CPP6LanguageMode

	kindCount
)

var kindNames = [kindCount]string{
	Unknown:            "unknown",
	Defines:            "defines",
	IncludePath:        "include_path",
	LibraryPaths:       "library_paths",
	Libraries:          "libraries",
	CMisc:              "c_misc",
	AsmMisc:            "asm_misc",
	LinkerMisc:         "linker_misc",
	CMiscUser:          "c_misc_user",
	AsmMiscUser:        "asm_misc_user",
	LinkerMiscUser:     "linker_misc_user",
	ArchiverMiscUser:   "archiver_misc_user",
	LinkerScript:       "linker_script",
	Endian:             "endian",
	Arch:               "arch",
	CPU:                "cpu",
	FPU:                "fpu",
	AsmDefines:         "asm_defines",
	EnableToolSpecific: "enable_tool_specific",
	UseMicrolib:        "use_microlib",
	CPUFPU:             "cpu_fpu",
	C5LanguageMode:     "c5_language_mode",
	CPP5LanguageMode:   "cpp5_language_mode",
	C6LanguageMode:     "c6_language_mode",
	CPP6LanguageMode:   "cpp6_language_mode",
}

// String returns the stable snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String. It returns Unknown and false for
// names that do not belong to the enumeration.
func ParseKind(name string) (Kind, bool) {
	for k := Unknown + 1; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Unknown, false
}

// AllKinds returns every kind except the Unknown sentinel, in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Unknown + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsList reports whether values of this kind are ordered string sequences.
func (k Kind) IsList() bool {
	switch k {
	case Defines, IncludePath, LibraryPaths, Libraries,
		CMisc, AsmMisc, LinkerMisc,
		CMiscUser, AsmMiscUser, LinkerMiscUser, ArchiverMiscUser,
		AsmDefines:
		return true
	}
	return false
}
