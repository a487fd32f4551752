package services

import (
	"fmt"
	"time"

	"inkpress/models"
	"inkpress/repositories"

	"github.com/prometheus/client_golang/prometheus"
)

// Workflow owns the article state machine: pending is the only initial
// state, published and rejected are terminal, and a pending article is
// decided exactly once.
type Workflow interface {
	Submit(draft models.ValidatedDraft, authorID string) (*models.Article, error)
	Decide(articleID uint, moderator models.Principal, decision models.Decision) (*models.Article, error)
	Vote(articleID uint, up bool) (*models.Article, error)
}

type workflow struct {
	articleRepo repositories.ArticleRepository

	submitted *prometheus.CounterVec
	decided   *prometheus.CounterVec
}

func NewWorkflow(articleRepo repositories.ArticleRepository, submitted, decided *prometheus.CounterVec) Workflow {
	return &workflow{
		articleRepo: articleRepo,
		submitted:   submitted,
		decided:     decided,
	}
}

func (s *workflow) Submit(draft models.ValidatedDraft, authorID string) (*models.Article, error) {
	article := &models.Article{
		AuthorID:      authorID,
		Title:         draft.Title(),
		Content:       draft.Content(),
		CoverImageURL: draft.CoverImageURL(),
		State:         models.StatePending,
		CreatedAt:     time.Now(),
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	if s.submitted != nil {
		s.submitted.WithLabelValues(authorID).Inc()
	}

	return article, nil
}

func (s *workflow) Decide(articleID uint, moderator models.Principal, decision models.Decision) (*models.Article, error) {
	if !moderator.Moderator() {
		return nil, models.ErrUnauthorized
	}
	if !decision.Valid() {
		return nil, fmt.Errorf("unknown decision %q", decision)
	}

	// Compare-and-set: only the first caller to observe pending wins the
	// transition. A concurrent loser falls through to the reads below.
	won, err := s.articleRepo.DecidePending(articleID, decision.State(), moderator.ID, time.Now())
	if err != nil {
		return nil, err
	}

	if !won {
		// Disambiguate: the article is either already terminal or was
		// never there.
		existing, err := s.articleRepo.GetByID(articleID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		if existing.State.Terminal() {
			return nil, models.ErrAlreadyDecided
		}
		return nil, models.ErrNotFound
	}

	if s.decided != nil {
		s.decided.WithLabelValues(string(decision)).Inc()
	}

	return s.articleRepo.GetByID(articleID)
}

func (s *workflow) Vote(articleID uint, up bool) (*models.Article, error) {
	counted, err := s.articleRepo.AddVote(articleID, up)
	if err != nil {
		return nil, err
	}
	if !counted {
		// Votes only land on published articles.
		return nil, models.ErrNotFound
	}
	return s.articleRepo.GetByID(articleID)
}
