package mt

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

func isSpaceRune(r rune) bool { return unicode.IsSpace(r) }

// Detokenize renders tokens as display text. Whitespace tokens collapse to a
// single space, closing and sentence-final punctuation attaches to the
// preceding token, and the result is trimmed with internal whitespace runs
// reduced to one space.
func Detokenize(tokens []domain.Token) string {
	buf := make([]byte, 0, 64)

	for _, t := range tokens {
		switch {
		case t.Kind == domain.TokenSpace:
			if n := len(buf); n > 0 && buf[n-1] != ' ' {
				buf = append(buf, ' ')
			}

		case t.Kind == domain.TokenPunct && strings.Contains(noSpaceBefore, t.Text):
			if n := len(buf); n > 0 && buf[n-1] == ' ' {
				buf = buf[:n-1]
			}
			buf = append(buf, t.Text...)

		default:
			buf = append(buf, t.Text...)
		}
	}

	return strings.Join(strings.Fields(string(buf)), " ")
}

// TranslateText runs the full pipeline on one text.
func TranslateText(text string, lex Lexicon, debug bool) (string, []domain.Match) {
	tokens, matches := Translate(Tokenize(text), lex, debug)
	return Detokenize(tokens), matches
}
