package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/store"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func TestCreatePostValidation(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	svc := NewPostService(store.NewMemoryStore(log), log)

	cases := []struct {
		name     string
		userName string
		content  string
		wantErr  bool
	}{
		{name: "valid", userName: "alice", content: "hi", wantErr: false},
		{name: "empty_user", userName: "", content: "hi", wantErr: true},
		{name: "empty_content", userName: "alice", content: "", wantErr: true},
		{name: "whitespace_user", userName: "   ", content: "hi", wantErr: true},
		{name: "whitespace_content", userName: "alice", content: "\t\n", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := svc.CreatePost(ctx, tc.userName, tc.content)
			if tc.wantErr {
				if !errors.Is(err, types.ErrInvalidInput) {
					t.Fatalf("CreatePost err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreatePost: %v", err)
			}
			if post.LikeCount != 0 || post.CommentCount != 0 {
				t.Fatalf("fresh post counts = (%d, %d), want (0, 0)", post.LikeCount, post.CommentCount)
			}
		})
	}
}

func TestUpdatePostValidation(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	st := store.NewMemoryStore(log)
	svc := NewPostService(st, log)

	post, err := svc.CreatePost(ctx, "alice", "hi")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := svc.UpdatePost(ctx, post.ID, "  "); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("UpdatePost with blank content err = %v, want ErrInvalidInput", err)
	}

	// Validation failures must not reach the store.
	got, err := svc.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Content != "hi" {
		t.Fatalf("content changed by rejected update: %q", got.Content)
	}
}

func TestPostCountsReflectStore(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)
	st := store.NewMemoryStore(log)
	svc := NewPostService(st, log)

	post, err := svc.CreatePost(ctx, "alice", "hi")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if err := st.AddLike(ctx, post.ID, "bob"); err != nil {
		t.Fatalf("AddLike: %v", err)
	}
	if _, err := st.CreateComment(ctx, post.ID, "carol", "nice"); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	got, err := svc.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.LikeCount != 1 || got.CommentCount != 1 {
		t.Fatalf("counts = (%d, %d), want (1, 1)", got.LikeCount, got.CommentCount)
	}

	posts, err := svc.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].LikeCount != 1 || posts[0].CommentCount != 1 {
		t.Fatalf("listed counts wrong: %+v", posts)
	}
}
