// Package mt implements rule-based phrase translation: tokenization,
// greedy longest-match substitution against a lexicon, and detokenization.
package mt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// punctuation is the set of characters emitted as single-rune TokenPunct tokens.
const punctuation = `.,!?;:()[]{}"'“”‘’—–-`

// noSpaceBefore is the subset of punctuation that attaches to the preceding token.
const noSpaceBefore = `)]}.,!?;:"'“”‘’—–-`

// isWordRune reports whether r belongs to a word: letters of any script,
// combining marks (Devanagari vowel signs and virama), digits, and underscore.
// The whole Devanagari block is accepted so that signs such as the danda stay
// attached to the surrounding word.
func isWordRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsMark(r) ||
		unicode.IsNumber(r) ||
		(r >= 0x0900 && r <= 0x097F)
}

func isPunct(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// Tokenize splits text into an ordered sequence of tokens. Every input byte
// belongs to exactly one token: Pos offsets tile the input from left to right.
// A whitespace token carries the text " " whatever run it stands for.
func Tokenize(text string) []domain.Token {
	tokens := make([]domain.Token, 0, len(text)/3+1)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case isWordRune(r):
			j := i + size
			for j < len(text) {
				next, n := utf8.DecodeRuneInString(text[j:])
				if !isWordRune(next) {
					break
				}
				j += n
			}
			tokens = append(tokens, domain.Token{Kind: domain.TokenWord, Text: text[i:j], Pos: i})
			i = j

		case isPunct(r):
			tokens = append(tokens, domain.Token{Kind: domain.TokenPunct, Text: text[i : i+size], Pos: i})
			i += size

		case unicode.IsSpace(r):
			j := i + size
			for j < len(text) {
				next, n := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(next) {
					break
				}
				j += n
			}
			tokens = append(tokens, domain.Token{Kind: domain.TokenSpace, Text: " ", Pos: i})
			i = j

		default:
			tokens = append(tokens, domain.Token{Kind: domain.TokenOther, Text: text[i : i+size], Pos: i})
			i += size
		}
	}

	return tokens
}
