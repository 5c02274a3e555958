package model

import "strings"

// romanValues maps the Roman numeral symbols accepted in cadastral height
// codes to their integer values.
var romanValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// ParseFloorCount extracts the above-ground floor count from a cadastral
// height code such as "II", "III+I" or "-I+IV". The code is tokenized on
// '+' and '-' boundaries; tokens introduced by '-' (basement floors) and
// tokens containing non-Roman characters (annexes like "TZA") are ignored.
// The result is the maximum of the remaining tokens, or 0 when none parse.
func ParseFloorCount(heightCode string) int {
	max := 0
	for _, tok := range tokenizeHeightCode(heightCode) {
		if tok.negated {
			continue
		}
		n, ok := romanToInt(tok.text)
		if !ok {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

type heightToken struct {
	text    string
	negated bool
}

// tokenizeHeightCode splits the code into sign-carrying tokens. A leading
// token with no explicit sign counts as positive.
func tokenizeHeightCode(code string) []heightToken {
	var tokens []heightToken
	var cur strings.Builder
	negated := false
	flush := func(nextNegated bool) {
		if cur.Len() > 0 {
			tokens = append(tokens, heightToken{text: cur.String(), negated: negated})
			cur.Reset()
		}
		negated = nextNegated
	}
	for _, r := range code {
		switch r {
		case '+':
			flush(false)
		case '-':
			flush(true)
		default:
			cur.WriteRune(r)
		}
	}
	flush(false)
	return tokens
}

// romanToInt decodes a Roman numeral by right-to-left accumulation:
// a symbol smaller than the one to its right subtracts (IV = 4, IX = 9).
// Returns false for empty strings or non-Roman characters.
func romanToInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	total, prev := 0, 0
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := romanValues[runes[i]]
		if !ok {
			return 0, false
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	return total, true
}
