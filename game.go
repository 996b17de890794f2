package main

import "strings"

// normalizeGuess trims and uppercases a guess string for comparison.
func normalizeGuess(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// checkGuess compares a guess to the target word and returns per-letter
// verdicts. Both strings must be exactly WordLength letters; callers
// validate length before scoring.
//
// The first pass claims every position-exact match and consumes that
// letter from the remaining-count table. Only after all exact matches
// are claimed does the second pass hand out "present" verdicts, each
// consuming a count, so repeated letters are never credited more times
// than they occur in the target.
func checkGuess(guess, target string) []string {
	result := make([]string, WordLength)
	remaining := make(map[byte]int, WordLength)
	for i := 0; i < WordLength; i++ {
		remaining[target[i]]++
	}

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			result[i] = GuessStatusCorrect
			remaining[guess[i]]--
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i] != "" {
			continue
		}
		if remaining[guess[i]] > 0 {
			result[i] = GuessStatusPresent
			remaining[guess[i]]--
		} else {
			result[i] = GuessStatusAbsent
		}
	}

	return result
}
