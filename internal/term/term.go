// Package term holds the console formatting shared by the commands.
package term

// Codes are the ANSI sequences the commands print with. All are empty when
// formatting is off.
type Codes struct {
	Yell, Purp, Und, Zero string
}

// New returns the formatting codes to use. They are disabled when enabled is
// false or the console cannot render them.
func New(enabled bool) Codes {
	if !enabled || !EnableVT() {
		return Codes{}
	}
	return Codes{Yell: "\033[33m", Purp: "\033[35m", Und: "\033[4m", Zero: "\033[0m"}
}
