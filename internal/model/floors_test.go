package model

import "testing"

func TestParseFloorCountSimple(t *testing.T) {
	cases := map[string]int{
		"I":    1,
		"II":   2,
		"III":  3,
		"IV":   4,
		"V":    5,
		"IX":   9,
		"X":    10,
		"XIV":  14,
		"MCMX": 1910,
	}
	for code, want := range cases {
		if got := ParseFloorCount(code); got != want {
			t.Errorf("ParseFloorCount(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestParseFloorCountComposite(t *testing.T) {
	// Multi-token codes keep the maximum positive token.
	cases := map[string]int{
		"III+I":   3,
		"I+IV":    4,
		"II+II":   2,
		"-I+III":  3,
		"IV-I":    4,
		"-II":     0,
		"-I-II":   0,
		"II+TZA":  2,
		"TZA":     0,
		"":        0,
		"+":       0,
		"SOLAR":   0,
		"-I+TZA":  0,
		"X+V+III": 10,
	}
	for code, want := range cases {
		if got := ParseFloorCount(code); got != want {
			t.Errorf("ParseFloorCount(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestRomanToIntRejectsMixed(t *testing.T) {
	if _, ok := romanToInt("II2"); ok {
		t.Error("expected mixed token to be rejected")
	}
	if _, ok := romanToInt(""); ok {
		t.Error("expected empty token to be rejected")
	}
}
