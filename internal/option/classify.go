// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file maps concrete ARM Compiler option identifiers onto Kind.
//
// Both compiler generations carry their own identifier namespace. Identifiers
// that describe the same concept alias to one kind (both implicit include path
// ids become IncludePath); identifiers whose values differ per generation keep
// separate kinds (C5LanguageMode vs. C6LanguageMode).

package option

import "sort"

// identifiers is the fixed classifier table.
var identifiers = map[string]Kind{
	"com.arm.tool.c.compiler.option.target.enableToolSpecificSettings":          EnableToolSpecific,
	"com.arm.tool.assembler.option.target.enableToolSpecificSettings":           EnableToolSpecific,
	"com.arm.tool.c.linker.option.target.enableToolSpecificSettings":            EnableToolSpecific,
	"com.arm.tool.c.compiler.v6.base.options.target.enableToolSpecificSettings": EnableToolSpecific,
	"com.arm.tool.assembler.v6.base.options.target.enableToolSpecificSettings":  EnableToolSpecific,
	"com.arm.tool.linker.v6.base.options.target.enableToolSpecificSettings":     EnableToolSpecific,

	"com.arm.toolchain.ac5.options.libs.useMicroLib":     UseMicrolib,
	"com.arm.toolchain.v6.base.options.libs.useMicroLib": UseMicrolib,

	"com.arm.toolchain.ac5.option.target.cpu_fpu":      CPUFPU,
	"com.arm.toolchain.v6.base.options.target.cpu_fpu": CPUFPU,

	"com.arm.toolchain.ac5.option.endian":      Endian,
	"com.arm.toolchain.v6.base.options.endian": Endian,

	"com.arm.tool.c.compile.option.lang":            C5LanguageMode,
	"com.arm.tool.cpp.compiler.option.lang":         CPP5LanguageMode,
	"com.arm.tool.c.compiler.v6.base.option.lang":   C6LanguageMode,
	"com.arm.tool.cpp.compiler.v6.base.option.lang": CPP6LanguageMode,

	"com.arm.tool.c.compiler.option.implicit.defmac":         Defines,
	"com.arm.tool.c.compiler.v6.base.option.implicit.defmac": Defines,
	"com.arm.tool.assembler.v6.base.option.implicit.defmac":  Defines,
	"com.arm.tool.assembler.option.implicit.predefine":       AsmDefines,

	"com.arm.tool.c.compiler.option.implicit.incpath":         IncludePath,
	"com.arm.tool.assembler.option.implicit.incpath":          IncludePath,
	"com.arm.tool.c.compiler.v6.base.option.implicit.incpath": IncludePath,
	"com.arm.tool.assembler.v6.base.option.implicit.incpath":  IncludePath,

	"com.arm.tool.c.linker.implicit.libs": Libraries,

	"com.arm.tool.c.compiler.option.flags":         CMiscUser,
	"com.arm.tool.c.compiler.v6.base.option.flags": CMiscUser,
	"com.arm.tool.assembler.option.flags":          AsmMiscUser,
	"com.arm.tool.assembler.v6.base.option.flags":  AsmMiscUser,
	"com.arm.tool.c.linker.option.flags":           LinkerMiscUser,
	"com.arm.tool.librarion.options.misc":          ArchiverMiscUser,

	"com.arm.tool.c.linker.option.scatter": LinkerScript,

	"com.arm.tool.c.compiler.option.implicit.flags":         CMisc,
	"com.arm.tool.c.compiler.v6.base.option.implicit.flags": CMisc,
	"com.arm.tool.assembler.option.implicit.flags":          AsmMisc,
	"com.arm.tool.assembler.v6.base.option.implicit.flags":  AsmMisc,
	"com.arm.tool.c.linker.option.implicit.flags":           LinkerMisc,
}

// Classify maps a toolchain option identifier to its Kind. The function is
// total: identifiers outside the table classify as Unknown.
func Classify(id string) Kind {
	if k, ok := identifiers[id]; ok {
		return k
	}
	return Unknown
}

// KnownIdentifiers returns every identifier in the classifier table, sorted.
func KnownIdentifiers() []string {
	ids := make([]string, 0, len(identifiers))
	for id := range identifiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
