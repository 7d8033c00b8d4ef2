package domain

// TokenKind classifies a token produced by the tokenizer.
type TokenKind uint8

const (
	// TokenWord is a maximal run of letters, marks, digits, or underscores.
	TokenWord TokenKind = iota + 1
	// TokenPunct is a single character from the punctuation set.
	TokenPunct
	// TokenSpace is a whitespace run; it always renders as a single space.
	TokenSpace
	// TokenOther is any other single character. It is matched like a word.
	TokenOther
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "WORD"
	case TokenPunct:
		return "PUNCT"
	case TokenSpace:
		return "SPACE"
	case TokenOther:
		return "OTHER"
	}
	return "UNKNOWN"
}

// Token is one position-tagged unit of a tokenized text.
// Pos is the byte offset of the token in the original input; tokens
// synthesized during translation carry Pos = -1.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int

	// Translated is set once Text has been replaced by a lexicon value.
	Translated bool
	// Removed marks a non-leading member of a matched phrase.
	Removed bool
}

// IsWord reports whether the token is a run of word characters.
func (t Token) IsWord() bool { return t.Kind == TokenWord }

// IsCandidate reports whether the token takes part in lexicon matching.
// Only punctuation and whitespace separate candidates.
func (t Token) IsCandidate() bool { return t.Kind == TokenWord || t.Kind == TokenOther }

// SpaceToken returns a synthetic whitespace token.
func SpaceToken() Token {
	return Token{Kind: TokenSpace, Text: " ", Pos: -1}
}

// Match records one phrase substitution for the debug audit trail.
type Match struct {
	Surface     string `json:"surface"`
	Translation string `json:"translation"`
	StartWord   int    `json:"start_word"`
	Length      int    `json:"len"`
}
