package services

import (
	"strings"

	"inkpress/models"
)

const DefaultMinWordCount = 2000

// Validator gates malformed or policy-violating drafts before they enter
// persistent state. It is pure: no store access, no side effects.
type Validator interface {
	Validate(draft models.ArticleDraft) (models.ValidatedDraft, error)
}

type validator struct {
	minWords int
}

func NewValidator(minWords int) Validator {
	if minWords <= 0 {
		minWords = DefaultMinWordCount
	}
	return &validator{minWords: minWords}
}

func (v *validator) Validate(draft models.ArticleDraft) (models.ValidatedDraft, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.ValidatedDraft{}, models.ErrEmptyTitle
	}
	if strings.TrimSpace(draft.Content) == "" {
		return models.ValidatedDraft{}, models.ErrEmptyContent
	}
	if wordCount(draft.Content) < v.minWords {
		return models.ValidatedDraft{}, models.ErrContentTooShort
	}
	return models.NewValidatedDraft(draft), nil
}

// wordCount splits on runs of whitespace and discards empty tokens. This is
// locale-naive on purpose: the submission policy counts tokens, not words in
// any linguistic sense.
func wordCount(content string) int {
	return len(strings.Fields(content))
}
