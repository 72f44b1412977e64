// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package option

// ShouldClear reports whether an option's accumulated list must be emptied
// before it is repopulated. Lists that are rebuilt from the settings on every
// pass would otherwise grow with each pass.
func ShouldClear(k Kind) bool {
	switch k {
	case AsmDefines, Defines, IncludePath, Libraries, CMisc, AsmMisc, LinkerMisc:
		return true
	case LibraryPaths:
		return false
	default:
		return false
	}
}
