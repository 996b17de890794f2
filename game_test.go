package main

import (
	"slices"
	"testing"
)

// TestCheckGuess checks the guess evaluation algorithm, including the
// duplicate-letter cases that require both passes to complete in order.
func TestCheckGuess(t *testing.T) {
	tests := []struct {
		target  string
		guess   string
		want    []string
		comment string
	}{
		{
			target:  "BUTTER",
			guess:   "BUTTER",
			want:    []string{"correct", "correct", "correct", "correct", "correct", "correct"},
			comment: "All correct.",
		},
		{
			target:  "BUTTER",
			guess:   "BUTTED",
			want:    []string{"correct", "correct", "correct", "correct", "correct", "absent"},
			comment: "Last letter wrong, rest exact.",
		},
		{
			target:  "BETTER",
			guess:   "EERIER",
			want:    []string{"absent", "correct", "absent", "absent", "correct", "correct"},
			comment: "Both target E's claimed by exact matches, leftover guess E absent.",
		},
		{
			target:  "BETTER",
			guess:   "TTTTTT",
			want:    []string{"absent", "absent", "correct", "correct", "absent", "absent"},
			comment: "Repeated guess letter credited only up to target count.",
		},
		{
			target:  "SIMPLE",
			guess:   "MIXUPS",
			want:    []string{"present", "correct", "absent", "absent", "present", "present"},
			comment: "Mix of correct, present, absent.",
		},
		{
			target:  "BUTTER",
			guess:   "SCHOOL",
			want:    []string{"absent", "absent", "absent", "absent", "absent", "absent"},
			comment: "All absent.",
		},
		{
			target:  "BETTER",
			guess:   "RETTEB",
			want:    []string{"present", "correct", "correct", "correct", "correct", "present"},
			comment: "Reversed word, middle letters exact.",
		},
	}

	for _, tt := range tests {
		got := checkGuess(tt.guess, tt.target)
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: checkGuess(%s, %s) = %v, want %v", tt.comment, tt.guess, tt.target, got, tt.want)
		}
	}
}

// TestCheckGuessDoesNotMutateInputs verifies scoring is pure.
func TestCheckGuessDoesNotMutateInputs(t *testing.T) {
	guess, target := "EERIER", "BETTER"
	first := checkGuess(guess, target)
	second := checkGuess(guess, target)
	if !slices.Equal(first, second) {
		t.Errorf("Repeated scoring diverged: %v then %v", first, second)
	}
}

// TestNormalizeGuess checks trimming and upper-casing.
func TestNormalizeGuess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"butter", "BUTTER"},
		{"  Butter  ", "BUTTER"},
		{"BUTTER", "BUTTER"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeGuess(tt.input); got != tt.want {
			t.Errorf("normalizeGuess(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
