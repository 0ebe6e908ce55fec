//go:build debug

package debug

import (
	"fmt"
	"log"
)

const Enabled = true

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("assertion failed: " + msg)
	}
}

// Assertf panics with the formatted message when cond is false.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("assertion failed: " + fmt.Sprintf(format, args...))
	}
}

func Log(format string, args ...interface{}) {
	log.Println("[DEBUG]" + fmt.Sprintf(format, args...))
}
