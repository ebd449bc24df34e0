package sim

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOrder reads an initial cup order. A bare run of digits such as
// "389125467" yields one label per digit; input containing commas or
// whitespace is split into integer tokens, e.g. "3, 8, 9, 10".
//
// Only token syntax is checked here. NewRing checks that the labels form a
// dense range without duplicates.
func ParseOrder(s string) ([]Label, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &InvalidInputError{Position: -1, Reason: "no cups given"}
	}

	if !strings.ContainsFunc(s, isSeparator) {
		order := make([]Label, 0, len(s))
		for i, ch := range s {
			if ch < '0' || ch > '9' {
				return nil, &InvalidInputError{Position: i, Token: string(ch), Reason: "not a digit"}
			}
			if ch == '0' {
				return nil, &InvalidInputError{Position: i, Token: string(ch), Reason: "labels must be positive"}
			}
			order = append(order, Label(ch-'0'))
		}
		return order, nil
	}

	tokens := strings.FieldsFunc(s, isSeparator)
	order := make([]Label, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &InvalidInputError{Position: i, Token: tok, Reason: "not an integer"}
		}
		if v < 1 {
			return nil, &InvalidInputError{Position: i, Token: tok, Reason: "labels must be positive"}
		}
		order = append(order, Label(v))
	}
	if len(order) == 0 {
		return nil, &InvalidInputError{Position: -1, Reason: "no cups given"}
	}
	return order, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
