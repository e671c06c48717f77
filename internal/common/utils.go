package common

import "strings"

// Fold returns s lowercased when ignoreCase is set, otherwise s unchanged.
func Fold(s string, ignoreCase bool) string {
	if ignoreCase {
		return strings.ToLower(s)
	}
	return s
}

// JoinMarkers renders a marker set for display.
func JoinMarkers(markers []string) string {
	return strings.Join(markers, ", ")
}

// ArgsIndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func ArgsIndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}

// Abs returns the absolute value of a.
func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
