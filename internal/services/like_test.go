package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yb-lee/sns-feed-backend/internal/store"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

func TestLikeValidation(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	st := store.NewMemoryStore(log)
	likes := NewLikeService(st, log)
	posts := NewPostService(st, log)

	post, err := posts.CreatePost(ctx, "alice", "hi")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := likes.LikePost(ctx, post.ID, ""); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("LikePost with empty user err = %v, want ErrInvalidInput", err)
	}
	if err := likes.UnlikePost(ctx, post.ID, " "); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("UnlikePost with blank user err = %v, want ErrInvalidInput", err)
	}

	if err := likes.LikePost(ctx, post.ID, "bob"); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if err := likes.LikePost(ctx, post.ID, "bob"); !errors.Is(err, types.ErrAlreadyLiked) {
		t.Fatalf("duplicate LikePost err = %v, want ErrAlreadyLiked", err)
	}
	if err := likes.UnlikePost(ctx, post.ID, "bob"); err != nil {
		t.Fatalf("UnlikePost: %v", err)
	}
	if err := likes.UnlikePost(ctx, post.ID, "bob"); !errors.Is(err, types.ErrNotLiked) {
		t.Fatalf("second UnlikePost err = %v, want ErrNotLiked", err)
	}
}

func TestCommentValidation(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	st := store.NewMemoryStore(log)
	comments := NewCommentService(st, log)
	posts := NewPostService(st, log)

	post, err := posts.CreatePost(ctx, "alice", "hi")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if _, err := comments.CreateComment(ctx, post.ID, "", "text"); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("CreateComment with empty user err = %v, want ErrInvalidInput", err)
	}
	if _, err := comments.CreateComment(ctx, post.ID, "bob", " "); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("CreateComment with blank content err = %v, want ErrInvalidInput", err)
	}
	if _, err := comments.CreateComment(ctx, 999, "bob", "text"); !errors.Is(err, types.ErrPostNotFound) {
		t.Fatalf("CreateComment on missing post err = %v, want ErrPostNotFound", err)
	}

	comment, err := comments.CreateComment(ctx, post.ID, "bob", "text")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if _, err := comments.UpdateComment(ctx, post.ID, comment.ID, ""); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("UpdateComment with empty content err = %v, want ErrInvalidInput", err)
	}
}
