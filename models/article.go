package models

import (
	"time"
)

type ArticleState string

const (
	StatePending   ArticleState = "pending"
	StatePublished ArticleState = "published"
	StateRejected  ArticleState = "rejected"
)

// Valid reports whether s is one of the known article states.
func (s ArticleState) Valid() bool {
	switch s {
	case StatePending, StatePublished, StateRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s ArticleState) Terminal() bool {
	return s == StatePublished || s == StateRejected
}

// Article is the persistent submission record. Title, Content and
// CoverImageURL are immutable once submitted; a rejected article is
// resubmitted as a new Article, never edited in place.
type Article struct {
	ID            uint         `json:"id" gorm:"primarykey"`
	AuthorID      string       `json:"author_id" gorm:"not null;index"`
	Title         string       `json:"title" gorm:"not null"`
	Content       string       `json:"content" gorm:"type:text;not null"`
	CoverImageURL string       `json:"cover_image_url,omitempty"`
	State         ArticleState `json:"state" gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt     time.Time    `json:"created_at" gorm:"index"`
	DecidedAt     *time.Time   `json:"decided_at,omitempty" gorm:"index"`
	DecidedBy     *string      `json:"decided_by,omitempty"`
	Upvotes       int64        `json:"upvotes" gorm:"not null;default:0"`
	Downvotes     int64        `json:"downvotes" gorm:"not null;default:0"`
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// State returns the terminal state the decision leads to.
func (d Decision) State() ArticleState {
	if d == DecisionApprove {
		return StatePublished
	}
	return StateRejected
}
