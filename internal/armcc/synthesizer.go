// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package armcc

import (
	"slices"
	"strings"

	"github.com/specialistvlad/rteopts/internal/cpufpu"
	"github.com/specialistvlad/rteopts/internal/option"
	"github.com/specialistvlad/rteopts/internal/settings"
	"github.com/specialistvlad/rteopts/internal/toolchain"
)

// Values written into option slots.
const (
	ToolSpecificDisabled = "0"

	C5C99 = "com.arm.tool.c.compile.option.lang.c99"
	C6C99 = "com.arm.tool.c.compiler.v6.base.option.lang.c99"

	EndianPrefixV5 = "com.arm.tool.c.compiler.option.endian."
	EndianPrefixV6 = "com.arm.tool.c.compiler.v6.base.option.endian."

	EndianAuto   = "auto"
	EndianLittle = "little"
	EndianBig    = "big"

	// C99Flag is the AC5 dialect flag armclang rejects.
	C99Flag = "--C99"
)

// Request is the input of a single synthesis call.
type Request struct {
	Generation toolchain.Generation
	Settings   settings.BuildSettings
	// Current is the value the option slot holds before resolution.
	Current option.Value
}

// Synthesizer computes option values. The zero value is the plain ARM
// Compiler behaviour.
type Synthesizer struct {
	// ArchValue produces the value of Arch options. When nil, Arch options
	// are left alone.
	ArchValue func(Request) option.Value
}

// ValueFor returns the value an option of the given kind must take. It never
// fails: kinds it has no opinion on resolve to option.Absent.
func (s Synthesizer) ValueFor(kind option.Kind, req Request) option.Value {
	switch kind {
	case option.Unknown:
		return option.Absent()

	case option.EnableToolSpecific:
		return option.Scalar(ToolSpecificDisabled)

	case option.CPUFPU:
		current, _ := req.Current.Scalar()
		v, ok := cpufpu.ComposeOption(req.Settings, current, req.Generation)
		if !ok {
			return option.Absent()
		}
		return option.Scalar(v)

	case option.C5LanguageMode:
		return option.Scalar(C5C99)
	case option.C6LanguageMode:
		return option.Scalar(C6C99)
	case option.CPP5LanguageMode, option.CPP6LanguageMode:
		return option.Absent()

	case option.Endian:
		return option.Scalar(EndianValue(req.Settings, req.Generation))

	case option.Arch:
		if s.ArchValue == nil {
			return option.Absent()
		}
		return s.ArchValue(req)

	case option.LibraryPaths:
		// Libraries are referenced by absolute path.
		return option.Absent()

	case option.AsmDefines:
		defines, _ := stringList(req.Settings, option.Defines)
		asm := make([]string, 0, len(defines))
		for _, d := range defines {
			asm = append(asm, AsmDefine(d))
		}
		return option.List(asm)

	case option.CMisc:
		if req.Generation.IsV6() {
			flags, ok := stringList(req.Settings, option.CMisc)
			if !ok {
				return option.Absent()
			}
			return option.List(StripC99(flags))
		}
	}

	return genericValue(kind, req.Settings)
}

// EndianValue maps the device's Dendian attribute to the endian option value
// of the generation. Missing or unrecognized attributes select auto.
func EndianValue(s settings.BuildSettings, gen toolchain.Generation) string {
	val := EndianAuto
	if endian, ok := settings.DeviceAttribute(settings.EndianOption, s); ok {
		switch endian {
		case settings.LittleEndian:
			val = EndianLittle
		case settings.BigEndian:
			val = EndianBig
		}
	}
	if gen.IsV6() {
		return EndianPrefixV6 + val
	}
	return EndianPrefixV5 + val
}

// AsmDefine turns a preprocessor define into an assembler SETA directive:
// "FOO=2" becomes "FOO SETA 2" and a bare "BAR" becomes "BAR SETA 1". A
// define starting with '=' has no name part and is used whole.
func AsmDefine(define string) string {
	name, val := define, "1"
	if pos := strings.IndexByte(define, '='); pos > 0 {
		name, val = define[:pos], define[pos+1:]
	}
	return name + " SETA " + val
}

// StripC99 returns flags without any occurrence of C99Flag. The input is not
// modified.
func StripC99(flags []string) []string {
	return slices.DeleteFunc(slices.Clone(flags), func(f string) bool {
		return f == C99Flag
	})
}

func genericValue(kind option.Kind, s settings.BuildSettings) option.Value {
	if kind.IsList() {
		items, ok := stringList(s, kind)
		if !ok {
			return option.Absent()
		}
		return option.List(items)
	}
	if s == nil {
		return option.Absent()
	}
	v, ok := s.StringValue(kind)
	if !ok {
		return option.Absent()
	}
	return option.Scalar(v)
}

func stringList(s settings.BuildSettings, kind option.Kind) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	return s.StringListValue(kind)
}
