//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const badFileNameChars = string(os.PathSeparator) + string(os.PathListSeparator)

// CleanFileName drops characters which cannot be part of a file name, leading
// dots are removed as well.
func CleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(badFileNameChars, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports if stream is a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
