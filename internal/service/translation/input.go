package translation

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// TranslateInput holds the parameters for translating one text.
type TranslateInput struct {
	Text  string
	Debug bool
}

// Validate checks the text against the configured length limit.
func (i TranslateInput) Validate(maxLen int) error {
	if n := utf8.RuneCountInString(i.Text); n > maxLen {
		return domain.NewValidationError("text", fmt.Sprintf("max %d characters", maxLen))
	}
	return nil
}

// BatchInput holds the parameters for translating several texts.
type BatchInput struct {
	Texts []string
	Debug bool
}

// Validate checks the batch size and every item, collecting all errors.
func (i BatchInput) Validate(maxItems, maxLen int) error {
	var errs []domain.FieldError

	if len(i.Texts) > maxItems {
		errs = append(errs, domain.FieldError{Field: "texts", Message: fmt.Sprintf("max %d items", maxItems)})
	}
	for idx, text := range i.Texts {
		if utf8.RuneCountInString(text) > maxLen {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("texts[%d]", idx),
				Message: fmt.Sprintf("max %d characters", maxLen),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
