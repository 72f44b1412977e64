// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package option defines the generation-independent vocabulary of the option
// engine: the closed Kind enumeration, the classifier that maps ARM Compiler
// option identifiers onto it, the list sanitizer, and the Value/Resolved types
// produced by a resolution pass.
package option
