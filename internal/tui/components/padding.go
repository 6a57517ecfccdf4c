package components

import "strings"

const padCacheSize = 64

// padCache holds space runs for the common small widths used by tree indents
// and help alignment.
var padCache = func() [padCacheSize + 1]string {
	var c [padCacheSize + 1]string
	for i := range c {
		c[i] = strings.Repeat(" ", i)
	}
	return c
}()

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= padCacheSize {
		return padCache[n]
	}
	return strings.Repeat(" ", n)
}
