// Package dbgprint routes debug prints by category. Every category has
// an independent mode: dropped, printed to stderr, or appended to a
// per-category log file. All categories start disabled and stay so until
// SetMode enables them; there is no implicit reset.
//
// The package keeps a single process-wide routing table and does no
// locking. Configure it during process initialization, before concurrent
// printing starts.
package dbgprint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pi/bitfield"
	"github.com/pi/bitfield/md"
)

// Category classifies a debug print so each class can be enabled
// independently.
type Category uint

const (
	CatInfo Category = iota
	CatWarn
	CatError
	CatCompiler
	catCount
)

// Mode selects where prints of one category go.
type Mode uint

const (
	Disable Mode = iota
	Print
	File
)

// Style flags adjust the shape of a single print.
type Style uint

const (
	NoPrefix Style = 1 << iota // omit the category prefix
	NoCrLf                     // omit the trailing newline
)

var catNames = [catCount]string{"Info", "Warn", "Error", "Compiler"}
var catFiles = [catCount]string{"info.log", "warn.log", "error.log", "compiler.log"}

var (
	modes    [catCount]Mode
	enabled  [(uint(catCount) + md.UintSizeMask) / md.BitsPerUint]uint
	logDir   = "."
	callback func(Category, string)
)

// SetMode routes cat to mode. Intended for process initialization;
// concurrent use needs external synchronization.
func SetMode(cat Category, mode Mode) {
	modes[cat] = mode
	if mode == Disable {
		bitfield.ClearBit(enabled[:], uint(cat))
	} else {
		bitfield.SetBit(enabled[:], uint(cat))
	}
}

// ModeFor returns the mode currently routing cat.
func ModeFor(cat Category) Mode {
	return modes[cat]
}

// SetLogDir sets the directory File-mode categories append their log
// files to. Defaults to the current directory.
func SetLogDir(dir string) {
	logDir = dir
}

// SetCallback installs fn as a tap receiving every print that passes
// category filtering, regardless of mode. A nil fn removes the tap.
func SetCallback(fn func(Category, string)) {
	callback = fn
}

// Printf formats and emits one debug print on cat. A disabled category
// returns before any formatting happens. Sink write failures are
// swallowed; debug prints are fire and forget.
func Printf(cat Category, style Style, format string, args ...interface{}) {
	if !bitfield.IsSet(enabled[:], uint(cat)) {
		return
	}
	text := fmt.Sprintf(format, args...)
	if style&NoPrefix == 0 {
		text = catNames[cat] + ": " + text
	}
	if style&NoCrLf == 0 {
		text += "\n"
	}
	if callback != nil {
		callback(cat, text)
	}
	switch modes[cat] {
	case Print:
		os.Stderr.WriteString(text)
	case File:
		f, err := os.OpenFile(filepath.Join(logDir, catFiles[cat]), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return
		}
		f.WriteString(text)
		f.Close()
	}
}
