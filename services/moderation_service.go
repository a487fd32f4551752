package services

import (
	"time"

	"inkpress/models"
	"inkpress/repositories"
)

// ModerationService is the read-only query surface for moderator
// dashboards. Creation-time and decision-time windows are exposed as
// separate operations so callers never conflate the two clocks.
type ModerationService interface {
	ListPending(params models.ListParams) ([]models.Article, int64, error)
	ListPublished(params models.ListParams) ([]models.Article, int64, error)
	GetPublished(id uint) (*models.Article, error)
	CountCreatedSince(state models.ArticleState, since time.Time) (int64, error)
	CountDecidedSince(state models.ArticleState, since time.Time) (int64, error)
	SumVotes(state models.ArticleState, since time.Time) (models.VoteTotals, error)
	Stats(since time.Time) (*models.DashboardStats, error)
}

type moderationService struct {
	articleRepo repositories.ArticleRepository
}

func NewModerationService(articleRepo repositories.ArticleRepository) ModerationService {
	return &moderationService{articleRepo: articleRepo}
}

func (s *moderationService) ListPending(params models.ListParams) ([]models.Article, int64, error) {
	return s.articleRepo.ListByState(models.StatePending, params.Offset(), params.Limit)
}

func (s *moderationService) ListPublished(params models.ListParams) ([]models.Article, int64, error) {
	return s.articleRepo.ListByState(models.StatePublished, params.Offset(), params.Limit)
}

func (s *moderationService) GetPublished(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByIDInState(id, models.StatePublished)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return article, nil
}

func (s *moderationService) CountCreatedSince(state models.ArticleState, since time.Time) (int64, error) {
	return s.articleRepo.CountCreatedSince(state, since)
}

func (s *moderationService) CountDecidedSince(state models.ArticleState, since time.Time) (int64, error) {
	return s.articleRepo.CountDecidedSince(state, since)
}

func (s *moderationService) SumVotes(state models.ArticleState, since time.Time) (models.VoteTotals, error) {
	return s.articleRepo.SumVotesSince(state, since)
}

// Stats assembles the dashboard aggregate for one window: pending by
// creation time, published/rejected by decision time, vote sums over
// published articles created in the window.
func (s *moderationService) Stats(since time.Time) (*models.DashboardStats, error) {
	pending, err := s.articleRepo.CountCreatedSince(models.StatePending, since)
	if err != nil {
		return nil, err
	}

	published, err := s.articleRepo.CountDecidedSince(models.StatePublished, since)
	if err != nil {
		return nil, err
	}

	rejected, err := s.articleRepo.CountDecidedSince(models.StateRejected, since)
	if err != nil {
		return nil, err
	}

	votes, err := s.articleRepo.SumVotesSince(models.StatePublished, since)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Since:          since,
		PendingCreated: pending,
		Published:      published,
		Rejected:       rejected,
		Votes:          votes,
	}, nil
}
