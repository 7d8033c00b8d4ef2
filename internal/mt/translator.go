package mt

import (
	"slices"
	"strings"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// Lexicon is the read side of a lexicon table.
type Lexicon interface {
	Lookup(surface string) (string, bool)
	MaxPhraseLength() int
}

// Translate substitutes lexicon translations into tokens using greedy
// longest-match segmentation over the candidate tokens (words and other
// single characters).
//
// At each word position the longest phrase (up to MaxPhraseLength words)
// present in the lexicon wins; its translation replaces the first word and
// the remaining member words are dropped. Positions with no match are left
// for a single-token fallback pass. Punctuation and whitespace only separate
// candidates and are never matched. Unknown words keep their original text.
//
// The input slice is not modified. Matches are collected only when debug is set.
func Translate(tokens []domain.Token, lex Lexicon, debug bool) ([]domain.Token, []domain.Match) {
	work := slices.Clone(tokens)

	positions := make([]int, 0, len(work))
	for i := range work {
		if work[i].IsCandidate() {
			positions = append(positions, i)
		}
	}

	var matches []domain.Match
	if debug {
		matches = []domain.Match{}
	}

	maxLen := max(lex.MaxPhraseLength(), 1)
	words := make([]string, 0, maxLen)

	for i := 0; i < len(positions); {
		matched := false

		for span := min(maxLen, len(positions)-i); span >= 1; span-- {
			words = words[:0]
			for _, p := range positions[i : i+span] {
				words = append(words, work[p].Text)
			}
			surface := strings.ToLower(strings.Join(words, " "))

			hit, ok := lex.Lookup(surface)
			if !ok {
				continue
			}

			head := &work[positions[i]]
			head.Text = hit
			head.Translated = true
			for _, p := range positions[i+1 : i+span] {
				work[p].Removed = true
			}

			if debug {
				matches = append(matches, domain.Match{
					Surface:     surface,
					Translation: hit,
					StartWord:   i,
					Length:      span,
				})
			}

			i += span
			matched = true
			break
		}

		if !matched {
			i++
		}
	}

	out := compact(work)

	for i := range out {
		if !out[i].IsCandidate() || out[i].Translated {
			continue
		}
		if hit, ok := lex.Lookup(out[i].Text); ok {
			out[i].Text = hit
			out[i].Translated = true
		}
	}

	return out, matches
}

// compact drops removed tokens. A translation that spans several words is
// fenced with whitespace tokens so the detokenizer cannot fuse it with
// adjacent tokens.
func compact(tokens []domain.Token) []domain.Token {
	out := make([]domain.Token, 0, len(tokens)+2)

	for _, t := range tokens {
		if t.Removed {
			continue
		}

		if t.Translated && strings.ContainsFunc(t.Text, isSpaceRune) {
			if n := len(out); n > 0 && out[n-1].Kind != domain.TokenSpace {
				out = append(out, domain.SpaceToken())
			}
			out = append(out, t, domain.SpaceToken())
			continue
		}

		out = append(out, t)
	}

	return out
}
