//go:build !windows

package term

// EnableVT reports whether the console renders escape sequences. Outside of
// windows it always does.
func EnableVT() bool { return true }
