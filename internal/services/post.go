package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/store"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*types.Post, error)
	CreatePost(ctx context.Context, userName, content string) (*types.Post, error)
	GetPost(ctx context.Context, postID int64) (*types.Post, error)
	UpdatePost(ctx context.Context, postID int64, content string) (*types.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type postService struct {
	store store.Store
	log   *logger.Logger
}

func NewPostService(st store.Store, baseLog *logger.Logger) PostService {
	return &postService{store: st, log: baseLog.With("service", "PostService")}
}

// withCounts fills the derived like/comment counts from the store so every
// returned post reflects the latest committed state.
func (ps *postService) withCounts(ctx context.Context, post *types.Post) (*types.Post, error) {
	likeCount, commentCount, err := ps.store.Counts(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.LikeCount = likeCount
	post.CommentCount = commentCount
	return post, nil
}

func (ps *postService) ListPosts(ctx context.Context) ([]*types.Post, error) {
	posts, err := ps.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if _, err := ps.withCounts(ctx, post); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (ps *postService) CreatePost(ctx context.Context, userName, content string) (*types.Post, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, fmt.Errorf("%w: userName is required", types.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", types.ErrInvalidInput)
	}
	post, err := ps.store.CreatePost(ctx, userName, content)
	if err != nil {
		return nil, err
	}
	ps.log.Info("Post created", "post_id", post.ID, "user_name", post.UserName)
	return ps.withCounts(ctx, post)
}

func (ps *postService) GetPost(ctx context.Context, postID int64) (*types.Post, error) {
	post, err := ps.store.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return ps.withCounts(ctx, post)
}

func (ps *postService) UpdatePost(ctx context.Context, postID int64, content string) (*types.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", types.ErrInvalidInput)
	}
	post, err := ps.store.UpdatePost(ctx, postID, content)
	if err != nil {
		return nil, err
	}
	return ps.withCounts(ctx, post)
}

func (ps *postService) DeletePost(ctx context.Context, postID int64) error {
	if err := ps.store.DeletePost(ctx, postID); err != nil {
		return err
	}
	ps.log.Info("Post deleted", "post_id", postID)
	return nil
}
