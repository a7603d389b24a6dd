package store

import (
	"context"

	"github.com/yb-lee/sns-feed-backend/internal/types"
)

// Store is the entity store shared by all request handlers. Every mutating
// operation executes as a single atomic unit: existence checks for
// subordinate entities (comments, likes) happen inside the same unit as the
// insert, and deleting a post removes its comments and likes with it so that
// a concurrent reader never observes a half-applied cascade.
//
// Expected failures are reported with the sentinel errors in the types
// package; any other error is a storage failure.
type Store interface {
	CreatePost(ctx context.Context, userName, content string) (*types.Post, error)
	GetPost(ctx context.Context, postID int64) (*types.Post, error)
	ListPosts(ctx context.Context) ([]*types.Post, error)
	UpdatePost(ctx context.Context, postID int64, content string) (*types.Post, error)
	DeletePost(ctx context.Context, postID int64) error

	CreateComment(ctx context.Context, postID int64, userName, content string) (*types.Comment, error)
	GetComment(ctx context.Context, postID, commentID int64) (*types.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]*types.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID int64, content string) (*types.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error

	AddLike(ctx context.Context, postID int64, userName string) error
	RemoveLike(ctx context.Context, postID int64, userName string) error

	// Counts recomputes the like and comment counts for a post from the
	// underlying relations at the moment of the call.
	Counts(ctx context.Context, postID int64) (likeCount, commentCount int64, err error)
}
