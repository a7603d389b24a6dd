package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type CommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comment *types.Comment) error
	GetByID(ctx context.Context, tx *gorm.DB, postID, commentID int64) (*types.Comment, error)
	ListByPost(ctx context.Context, tx *gorm.DB, postID int64) ([]*types.Comment, error)
	UpdateContent(ctx context.Context, tx *gorm.DB, postID, commentID int64, content string) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, postID, commentID int64) (int64, error)
	DeleteByPost(ctx context.Context, tx *gorm.DB, postID int64) error
	CountByPost(ctx context.Context, tx *gorm.DB, postID int64) (int64, error)
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return &commentRepo{db: db, log: baseLog.With("repo", "CommentRepo")}
}

func (cr *commentRepo) Create(ctx context.Context, tx *gorm.DB, comment *types.Comment) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(comment).Error
}

func (cr *commentRepo) GetByID(ctx context.Context, tx *gorm.DB, postID, commentID int64) (*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Comment
	if err := transaction.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *commentRepo) ListByPost(ctx context.Context, tx *gorm.DB, postID int64) ([]*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Comment
	if err := transaction.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *commentRepo) UpdateContent(ctx context.Context, tx *gorm.DB, postID, commentID int64, content string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Comment{}).
		Where("id = ? AND post_id = ?", commentID, postID).
		Update("content", content)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (cr *commentRepo) Delete(ctx context.Context, tx *gorm.DB, postID, commentID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		Delete(&types.Comment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (cr *commentRepo) DeleteByPost(ctx context.Context, tx *gorm.DB, postID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&types.Comment{}).Error
}

func (cr *commentRepo) CountByPost(ctx context.Context, tx *gorm.DB, postID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
