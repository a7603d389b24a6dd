package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/store"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type CommentService interface {
	ListComments(ctx context.Context, postID int64) ([]*types.Comment, error)
	CreateComment(ctx context.Context, postID int64, userName, content string) (*types.Comment, error)
	GetComment(ctx context.Context, postID, commentID int64) (*types.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID int64, content string) (*types.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error
}

type commentService struct {
	store store.Store
	log   *logger.Logger
}

func NewCommentService(st store.Store, baseLog *logger.Logger) CommentService {
	return &commentService{store: st, log: baseLog.With("service", "CommentService")}
}

func (cs *commentService) ListComments(ctx context.Context, postID int64) ([]*types.Comment, error) {
	return cs.store.ListComments(ctx, postID)
}

func (cs *commentService) CreateComment(ctx context.Context, postID int64, userName, content string) (*types.Comment, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, fmt.Errorf("%w: userName is required", types.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", types.ErrInvalidInput)
	}
	comment, err := cs.store.CreateComment(ctx, postID, userName, content)
	if err != nil {
		return nil, err
	}
	cs.log.Info("Comment created", "post_id", postID, "comment_id", comment.ID)
	return comment, nil
}

func (cs *commentService) GetComment(ctx context.Context, postID, commentID int64) (*types.Comment, error) {
	return cs.store.GetComment(ctx, postID, commentID)
}

func (cs *commentService) UpdateComment(ctx context.Context, postID, commentID int64, content string) (*types.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", types.ErrInvalidInput)
	}
	return cs.store.UpdateComment(ctx, postID, commentID, content)
}

func (cs *commentService) DeleteComment(ctx context.Context, postID, commentID int64) error {
	return cs.store.DeleteComment(ctx, postID, commentID)
}
