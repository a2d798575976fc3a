package calc

import (
	"sort"
	"strings"

	"github.com/aretw0/strcalc/pkg/domain"
)

// Split cuts the body of spec into tokens.
//
// At each position the longest matching delimiter wins, so "**" beats "*".
// Leading, trailing and adjacent delimiters produce empty tokens; an empty
// body produces none.
func Split(spec domain.DelimiterSpec) []domain.Token {
	body := spec.Body
	if body == "" {
		return nil
	}

	delims := longestFirst(spec.Delimiters)

	var tokens []domain.Token
	start, i := 0, 0
	for i < len(body) {
		width := matchAt(body, i, delims)
		if width == 0 {
			i++
			continue
		}
		tokens = append(tokens, domain.Token{Value: body[start:i], Position: len(tokens)})
		i += width
		start = i
	}
	tokens = append(tokens, domain.Token{Value: body[start:], Position: len(tokens)})

	return tokens
}

// matchAt returns the length of the first delimiter in delims found at body[i:], or 0.
func matchAt(body string, i int, delims []string) int {
	for _, d := range delims {
		if strings.HasPrefix(body[i:], d) {
			return len(d)
		}
	}
	return 0
}

func longestFirst(delims []string) []string {
	out := make([]string, 0, len(delims))
	for _, d := range delims {
		if d != "" {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return len(out[a]) > len(out[b])
	})
	return out
}
