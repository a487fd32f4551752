package models

// ArticleDraft is the unvalidated submission payload built by the caller.
// It is transient: consumed once by Validate and never persisted as-is.
type ArticleDraft struct {
	Title         string
	Content       string
	CoverImageURL string
}

// ValidatedDraft wraps a draft that passed all submission checks. The
// unexported field means only this package can construct one, and the
// services validator is the single place that does; Workflow.Submit
// accepts nothing else.
type ValidatedDraft struct {
	draft ArticleDraft
}

// NewValidatedDraft is intended for the submission validator only.
func NewValidatedDraft(d ArticleDraft) ValidatedDraft {
	return ValidatedDraft{draft: d}
}

func (v ValidatedDraft) Title() string         { return v.draft.Title }
func (v ValidatedDraft) Content() string       { return v.draft.Content }
func (v ValidatedDraft) CoverImageURL() string { return v.draft.CoverImageURL }
