package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type LikeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, like *types.Like) error
	Exists(ctx context.Context, tx *gorm.DB, postID int64, userName string) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, postID int64, userName string) (int64, error)
	DeleteByPost(ctx context.Context, tx *gorm.DB, postID int64) error
	CountByPost(ctx context.Context, tx *gorm.DB, postID int64) (int64, error)
}

type likeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo {
	return &likeRepo{db: db, log: baseLog.With("repo", "LikeRepo")}
}

func (lr *likeRepo) Create(ctx context.Context, tx *gorm.DB, like *types.Like) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).Create(like).Error
}

func (lr *likeRepo) Exists(ctx context.Context, tx *gorm.DB, postID int64, userName string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Like{}).
		Where("post_id = ? AND user_name = ?", postID, userName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (lr *likeRepo) Delete(ctx context.Context, tx *gorm.DB, postID int64, userName string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	res := transaction.WithContext(ctx).
		Where("post_id = ? AND user_name = ?", postID, userName).
		Delete(&types.Like{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (lr *likeRepo) DeleteByPost(ctx context.Context, tx *gorm.DB, postID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&types.Like{}).Error
}

func (lr *likeRepo) CountByPost(ctx context.Context, tx *gorm.DB, postID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
