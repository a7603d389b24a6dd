package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, post *types.Post) error
	GetByID(ctx context.Context, tx *gorm.DB, postID int64) (*types.Post, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Post, error)
	Exists(ctx context.Context, tx *gorm.DB, postID int64) (bool, error)
	UpdateContent(ctx context.Context, tx *gorm.DB, postID int64, content string) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, postID int64) (int64, error)
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, post *types.Post) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Create(post).Error
}

func (pr *postRepo) GetByID(ctx context.Context, tx *gorm.DB, postID int64) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Post
	if err := transaction.WithContext(ctx).
		Where("id = ?", postID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *postRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Post
	if err := transaction.WithContext(ctx).
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) Exists(ctx context.Context, tx *gorm.DB, postID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (pr *postRepo) UpdateContent(ctx context.Context, tx *gorm.DB, postID int64, content string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Update("content", content)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (pr *postRepo) Delete(ctx context.Context, tx *gorm.DB, postID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", postID).
		Delete(&types.Post{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
