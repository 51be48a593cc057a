// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestionThreshold is the largest edit distance still offered as a
// "did you mean" hint. Three edits catches transpositions, dropped
// characters, and extra characters without suggesting unrelated names.
const suggestionThreshold = 3

// suggestCommand returns the closest subcommand name to unknown, or ""
// when nothing is within the suggestion threshold.
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, len(commands))
	for i, command := range commands {
		names[i] = command.Name
	}
	return closest(unknown, names)
}

// suggestFlag finds the first flag-shaped argument that flagSet does
// not define and returns the closest defined flag, prefixed with -- or
// - as appropriate. Returns "" when there is no close match.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(flag *pflag.Flag) {
		defined = append(defined, flag.Name)
	})

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if index := strings.IndexByte(name, '='); index >= 0 {
			name = name[:index]
		}
		if flagSet.Lookup(name) != nil {
			continue
		}
		if len(name) == 1 && flagSet.ShorthandLookup(name) != nil {
			continue
		}

		// First unrecognized flag decides the suggestion.
		match := closest(name, defined)
		switch {
		case match == "":
			return ""
		case len(match) == 1:
			return "-" + match
		default:
			return "--" + match
		}
	}

	return ""
}

// closest returns the candidate with the smallest edit distance to
// input, or "" when even the best candidate is beyond the threshold.
func closest(input string, candidates []string) string {
	best := ""
	bestDistance := suggestionThreshold + 1

	for _, candidate := range candidates {
		if distance := editDistance(input, candidate); distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}

	return best
}

// editDistance is the Levenshtein distance between a and b: the
// minimum number of single-character insertions, deletions, and
// substitutions turning one into the other. Two rows of the distance
// matrix are kept and swapped, so space is O(min(len(a), len(b))).
func editDistance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}
