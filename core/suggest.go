package core

import (
	"strings"

	"github.com/chriso345/argspec/internal/common"
)

// suggestMarker returns the known marker closest to token, or "" when none is
// near enough to be a plausible typo.
func suggestMarker(token string, opts []Option) string {
	var markers []string
	for _, o := range opts {
		markers = append(markers, o.Markers...)
	}
	return closestMatch(token, markers)
}

// closestMatch returns the candidate with the smallest edit distance to target, or
// empty string if none are within a reasonable threshold.
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	low := strings.ToLower(target)
	// A token that is a strict prefix of a marker is most likely an abbreviation.
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc != low && strings.HasPrefix(lc, low) && len(strings.Trim(low, "-")) > 0 {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if common.Abs(len(lc)-len(low)) > 3 {
			continue
		}
		if isTransposition(low, lc) {
			return c
		}
		d := levenshtein(low, lc)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= max(1, len(low)/3) {
		return best
	}
	return ""
}

// isTransposition checks for one-character transposition (Damerau case)
func isTransposition(a, b string) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var diff []int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff = append(diff, i)
			if len(diff) > 2 {
				return false
			}
		}
	}
	if len(diff) != 2 {
		return false
	}
	return a[diff[0]] == b[diff[1]] && a[diff[1]] == b[diff[0]]
}

// levenshtein computes the Levenshtein edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}
	return prev[lb]
}
