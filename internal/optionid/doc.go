// internal/optionid/doc.go

/*
Package optionid provides a structured representation of the dotted
identifiers the ARM Compiler plug-in uses for toolchains and option slots,
e.g. `com.arm.tool.c.compiler.v6.base.option.flags`.

The package validates identifiers read from settings files and answers
segment-wise prefix questions, so that `com.arm.toolchain.v6` matches
`com.arm.toolchain.v6.base.exe` but not `com.arm.toolchain.v6x`.
*/
package optionid
