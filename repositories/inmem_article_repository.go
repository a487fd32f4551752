package repositories

import (
	"sort"
	"sync"
	"time"

	"inkpress/models"

	"gorm.io/gorm"
)

// inMemArticleRepository is a mutex-guarded in-memory store adapter with the
// same transition contract as the Postgres one. Used by tests and local
// development; a decide race is settled by whoever holds the lock first.
type inMemArticleRepository struct {
	mu       sync.Mutex
	nextID   uint
	articles map[uint]models.Article
}

func NewInMemArticleRepository() ArticleRepository {
	return &inMemArticleRepository{
		nextID:   1,
		articles: make(map[uint]models.Article),
	}
}

func (r *inMemArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	r.articles[article.ID] = *article
	return nil
}

func (r *inMemArticleRepository) GetByID(id uint) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

func (r *inMemArticleRepository) GetByIDInState(id uint, state models.ArticleState) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, ok := r.articles[id]
	if !ok || article.State != state {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

func (r *inMemArticleRepository) DecidePending(id uint, state models.ArticleState, decidedBy string, decidedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, ok := r.articles[id]
	if !ok || article.State != models.StatePending {
		return false, nil
	}

	article.State = state
	article.DecidedAt = &decidedAt
	article.DecidedBy = &decidedBy
	r.articles[id] = article
	return true, nil
}

func (r *inMemArticleRepository) AddVote(id uint, up bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, ok := r.articles[id]
	if !ok || article.State != models.StatePublished {
		return false, nil
	}

	if up {
		article.Upvotes++
	} else {
		article.Downvotes++
	}
	r.articles[id] = article
	return true, nil
}

func (r *inMemArticleRepository) ListByState(state models.ArticleState, offset, limit int) ([]models.Article, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Article
	for _, article := range r.articles {
		if article.State == state {
			matched = append(matched, article)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Article{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *inMemArticleRepository) CountCreatedSince(state models.ArticleState, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, article := range r.articles {
		if article.State == state && !article.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *inMemArticleRepository) CountDecidedSince(state models.ArticleState, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, article := range r.articles {
		if article.State == state && article.DecidedAt != nil && !article.DecidedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *inMemArticleRepository) SumVotesSince(state models.ArticleState, since time.Time) (models.VoteTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var totals models.VoteTotals
	for _, article := range r.articles {
		if article.State == state && !article.CreatedAt.Before(since) {
			totals.Upvotes += article.Upvotes
			totals.Downvotes += article.Downvotes
		}
	}
	return totals, nil
}
