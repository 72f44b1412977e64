// Package registry maps toolchain identities to the strategy that resolves
// their options.
//
// Strategies are registered by Modules under a toolchain identifier prefix
// such as "com.arm.toolchain.v6". A lookup picks the longest registered prefix
// of a configuration's toolchain identifier, segment by segment, and falls
// back to the plain ARM Compiler strategy when nothing matches.
//
// During application startup the registry is populated and then validated,
// so that an incomplete strategy is reported before any configuration is
// resolved.
package registry
