package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/store"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type LikeService interface {
	LikePost(ctx context.Context, postID int64, userName string) error
	UnlikePost(ctx context.Context, postID int64, userName string) error
}

type likeService struct {
	store store.Store
	log   *logger.Logger
}

func NewLikeService(st store.Store, baseLog *logger.Logger) LikeService {
	return &likeService{store: st, log: baseLog.With("service", "LikeService")}
}

func (ls *likeService) LikePost(ctx context.Context, postID int64, userName string) error {
	if strings.TrimSpace(userName) == "" {
		return fmt.Errorf("%w: userName is required", types.ErrInvalidInput)
	}
	if err := ls.store.AddLike(ctx, postID, userName); err != nil {
		return err
	}
	ls.log.Info("Post liked", "post_id", postID, "user_name", userName)
	return nil
}

func (ls *likeService) UnlikePost(ctx context.Context, postID int64, userName string) error {
	if strings.TrimSpace(userName) == "" {
		return fmt.Errorf("%w: userName query parameter is required", types.ErrInvalidInput)
	}
	if err := ls.store.RemoveLike(ctx, postID, userName); err != nil {
		return err
	}
	ls.log.Info("Post unliked", "post_id", postID, "user_name", userName)
	return nil
}
