//go:build windows

package term

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableVT turns on virtual terminal processing for stdout and stderr and
// reports whether the console accepted it.
func EnableVT() bool {
	for _, f := range [2]*os.File{os.Stdout, os.Stderr} {
		h := windows.Handle(f.Fd())

		var mode uint32
		if err := windows.GetConsoleMode(h, &mode); err != nil {
			return false
		}
		if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
			continue
		}
		if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			return false
		}
	}
	return true
}
