package repositories

import (
	"errors"
	"fmt"
	"time"

	"inkpress/models"

	"gorm.io/gorm"
)

// ArticleRepository is the store adapter behind the workflow and the
// moderation queries. Only Create, DecidePending and AddVote mutate;
// everything else is a pure read of the latest committed state.
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetByIDInState(id uint, state models.ArticleState) (*models.Article, error)
	// DecidePending performs the compare-and-set transition of a pending
	// article into a terminal state. It reports whether the row was won;
	// false with a nil error means the article was not pending (or does
	// not exist) at the time of the update.
	DecidePending(id uint, state models.ArticleState, decidedBy string, decidedAt time.Time) (bool, error)
	// AddVote atomically increments a vote counter of a published article.
	AddVote(id uint, up bool) (bool, error)
	ListByState(state models.ArticleState, offset, limit int) ([]models.Article, int64, error)
	CountCreatedSince(state models.ArticleState, since time.Time) (int64, error)
	CountDecidedSince(state models.ArticleState, since time.Time) (int64, error)
	SumVotesSince(state models.ArticleState, since time.Time) (models.VoteTotals, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// storeErr keeps gorm.ErrRecordNotFound recognizable and wraps everything
// else as an infrastructure failure.
func storeErr(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}

func (r *articleRepository) Create(article *models.Article) error {
	return storeErr(r.db.Create(article).Error)
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &article, nil
}

func (r *articleRepository) GetByIDInState(id uint, state models.ArticleState) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND state = ?", id, state).First(&article).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &article, nil
}

func (r *articleRepository) DecidePending(id uint, state models.ArticleState, decidedBy string, decidedAt time.Time) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND state = ?", id, models.StatePending).
		Updates(map[string]interface{}{
			"state":      state,
			"decided_at": decidedAt,
			"decided_by": decidedBy,
		})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *articleRepository) AddVote(id uint, up bool) (bool, error) {
	column := "upvotes"
	if !up {
		column = "downvotes"
	}
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND state = ?", id, models.StatePublished).
		Update(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *articleRepository) ListByState(state models.ArticleState, offset, limit int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Where("state = ?", state)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, storeErr(err)
	}

	err := query.Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, storeErr(err)
	}

	return articles, total, nil
}

func (r *articleRepository) CountCreatedSince(state models.ArticleState, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("state = ? AND created_at >= ?", state, since).
		Count(&count).Error
	return count, storeErr(err)
}

func (r *articleRepository) CountDecidedSince(state models.ArticleState, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("state = ? AND decided_at >= ?", state, since).
		Count(&count).Error
	return count, storeErr(err)
}

func (r *articleRepository) SumVotesSince(state models.ArticleState, since time.Time) (models.VoteTotals, error) {
	var totals models.VoteTotals
	err := r.db.Model(&models.Article{}).
		Select("COALESCE(SUM(upvotes), 0) AS upvotes, COALESCE(SUM(downvotes), 0) AS downvotes").
		Where("state = ? AND created_at >= ?", state, since).
		Scan(&totals).Error
	return totals, storeErr(err)
}
