//go:build !debug

// Package debug holds assertions and debug logging that exist only in
// builds with the debug tag. In default builds every function here is an
// empty no-op and a violated precondition is undefined behavior, not a
// recoverable error.
package debug

const Enabled = false

func Assert(cond bool, msg string) {}

func Assertf(cond bool, format string, args ...interface{}) {}

func Log(format string, args ...interface{}) {}
