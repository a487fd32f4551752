package services

import (
	"strings"
	"testing"

	"inkpress/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftWithWords(words int) models.ArticleDraft {
	return models.ArticleDraft{
		Title:   "Test",
		Content: strings.Repeat("word ", words),
	}
}

func TestValidateEmptyTitle(t *testing.T) {
	v := NewValidator(10)

	_, err := v.Validate(models.ArticleDraft{Title: "   \t ", Content: "some words here"})
	assert.ErrorIs(t, err, models.ErrEmptyTitle)
}

func TestValidateEmptyContent(t *testing.T) {
	v := NewValidator(10)

	_, err := v.Validate(models.ArticleDraft{Title: "Test", Content: " \n\t "})
	assert.ErrorIs(t, err, models.ErrEmptyContent)
}

func TestValidateWordCountThreshold(t *testing.T) {
	v := NewValidator(DefaultMinWordCount)

	_, err := v.Validate(draftWithWords(1999))
	assert.ErrorIs(t, err, models.ErrContentTooShort)

	validated, err := v.Validate(draftWithWords(2000))
	require.NoError(t, err)
	assert.Equal(t, "Test", validated.Title())
}

func TestValidateCountsWhitespaceRuns(t *testing.T) {
	v := NewValidator(3)

	// Runs of mixed whitespace delimit words; empty tokens are discarded.
	_, err := v.Validate(models.ArticleDraft{Title: "Test", Content: "  one \t two  \n "})
	assert.ErrorIs(t, err, models.ErrContentTooShort)

	_, err = v.Validate(models.ArticleDraft{Title: "Test", Content: "one \t\n two   three"})
	assert.NoError(t, err)
}

func TestValidateKeepsDraftFields(t *testing.T) {
	v := NewValidator(2)

	draft := models.ArticleDraft{
		Title:         "Test",
		Content:       "enough words here",
		CoverImageURL: "https://covers.example.com/a.png",
	}

	validated, err := v.Validate(draft)
	require.NoError(t, err)
	assert.Equal(t, draft.Title, validated.Title())
	assert.Equal(t, draft.Content, validated.Content())
	assert.Equal(t, draft.CoverImageURL, validated.CoverImageURL())
}

func TestNewValidatorDefaultsThreshold(t *testing.T) {
	v := NewValidator(0)

	_, err := v.Validate(draftWithWords(DefaultMinWordCount - 1))
	assert.ErrorIs(t, err, models.ErrContentTooShort)
}
