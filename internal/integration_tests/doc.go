// Package integration_tests holds the end-to-end harness shared by the
// test suites in its subdirectories. Each suite writes settings files into a
// temporary directory, runs a full App against them and inspects the report
// and the log.
package integration_tests
