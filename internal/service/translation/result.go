package translation

import "github.com/heartmarshall/rbmt-backend/internal/domain"

// Result is the outcome of translating one text. Matches is nil unless
// debug output was requested.
type Result struct {
	TranslatedText string
	Matches        []domain.Match
}
