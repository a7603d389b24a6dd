package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/repos"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

// GormStore is the durable entity store. All multi-step mutations run inside
// a database transaction; the schema additionally carries ON DELETE CASCADE
// foreign keys from comments/likes to posts.
type GormStore struct {
	db       *gorm.DB
	log      *logger.Logger
	posts    repos.PostRepo
	comments repos.CommentRepo
	likes    repos.LikeRepo
}

func NewGormStore(db *gorm.DB, baseLog *logger.Logger, posts repos.PostRepo, comments repos.CommentRepo, likes repos.LikeRepo) *GormStore {
	return &GormStore{
		db:       db,
		log:      baseLog.With("store", "GormStore"),
		posts:    posts,
		comments: comments,
		likes:    likes,
	}
}

func (s *GormStore) CreatePost(ctx context.Context, userName, content string) (*types.Post, error) {
	post := &types.Post{UserName: userName, Content: content}
	if err := s.posts.Create(ctx, nil, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *GormStore) GetPost(ctx context.Context, postID int64) (*types.Post, error) {
	post, err := s.posts.GetByID(ctx, nil, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *GormStore) ListPosts(ctx context.Context) ([]*types.Post, error) {
	return s.posts.List(ctx, nil)
}

func (s *GormStore) UpdatePost(ctx context.Context, postID int64, content string) (*types.Post, error) {
	var post *types.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.posts.UpdateContent(ctx, tx, postID, content)
		if err != nil {
			return err
		}
		if rows == 0 {
			return types.ErrPostNotFound
		}
		post, err = s.posts.GetByID(ctx, tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post together with its comments and likes in one
// transaction. The explicit child deletes keep the cascade correct even when
// the schema was migrated without foreign key constraints.
func (s *GormStore) DeletePost(ctx context.Context, postID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.comments.DeleteByPost(ctx, tx, postID); err != nil {
			return err
		}
		if err := s.likes.DeleteByPost(ctx, tx, postID); err != nil {
			return err
		}
		rows, err := s.posts.Delete(ctx, tx, postID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return types.ErrPostNotFound
		}
		return nil
	})
}

func (s *GormStore) CreateComment(ctx context.Context, postID int64, userName, content string) (*types.Comment, error) {
	comment := &types.Comment{PostID: postID, UserName: userName, Content: content}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Checked inside the transaction so the post cannot vanish
		// between the check and the insert.
		ok, err := s.posts.Exists(ctx, tx, postID)
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrPostNotFound
		}
		return s.comments.Create(ctx, tx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *GormStore) GetComment(ctx context.Context, postID, commentID int64) (*types.Comment, error) {
	comment, err := s.comments.GetByID(ctx, nil, postID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *GormStore) ListComments(ctx context.Context, postID int64) ([]*types.Comment, error) {
	ok, err := s.posts.Exists(ctx, nil, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.ErrPostNotFound
	}
	return s.comments.ListByPost(ctx, nil, postID)
}

func (s *GormStore) UpdateComment(ctx context.Context, postID, commentID int64, content string) (*types.Comment, error) {
	var comment *types.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.comments.UpdateContent(ctx, tx, postID, commentID, content)
		if err != nil {
			return err
		}
		if rows == 0 {
			return types.ErrCommentNotFound
		}
		comment, err = s.comments.GetByID(ctx, tx, postID, commentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *GormStore) DeleteComment(ctx context.Context, postID, commentID int64) error {
	rows, err := s.comments.Delete(ctx, nil, postID, commentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return types.ErrCommentNotFound
	}
	return nil
}

func (s *GormStore) AddLike(ctx context.Context, postID int64, userName string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.posts.Exists(ctx, tx, postID)
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrPostNotFound
		}
		liked, err := s.likes.Exists(ctx, tx, postID, userName)
		if err != nil {
			return err
		}
		if liked {
			return types.ErrAlreadyLiked
		}
		if err := s.likes.Create(ctx, tx, &types.Like{PostID: postID, UserName: userName}); err != nil {
			// Backstop for two transactions racing past the Exists check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.ErrAlreadyLiked
			}
			return err
		}
		return nil
	})
}

func (s *GormStore) RemoveLike(ctx context.Context, postID int64, userName string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.posts.Exists(ctx, tx, postID)
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrPostNotFound
		}
		rows, err := s.likes.Delete(ctx, tx, postID, userName)
		if err != nil {
			return err
		}
		if rows == 0 {
			return types.ErrNotLiked
		}
		return nil
	})
}

func (s *GormStore) Counts(ctx context.Context, postID int64) (int64, int64, error) {
	likeCount, err := s.likes.CountByPost(ctx, nil, postID)
	if err != nil {
		return 0, 0, err
	}
	commentCount, err := s.comments.CountByPost(ctx, nil, postID)
	if err != nil {
		return 0, 0, err
	}
	return likeCount, commentCount, nil
}
