package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/handlers"
	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/server"
	"github.com/yb-lee/sns-feed-backend/internal/services"
	"github.com/yb-lee/sns-feed-backend/internal/store"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	st := store.NewMemoryStore(log)

	return server.NewRouter(server.RouterConfig{
		Log:            log,
		CORSOrigins:    []string{"http://localhost:3000"},
		PostHandler:    handlers.NewPostHandler(services.NewPostService(st, log)),
		CommentHandler: handlers.NewCommentHandler(services.NewCommentService(st, log)),
		LikeHandler:    handlers.NewLikeHandler(services.NewLikeService(st, log)),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodePost(t *testing.T, w *httptest.ResponseRecorder) types.Post {
	t.Helper()
	var post types.Post
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("failed to decode post: %v (body: %s)", err, w.Body.String())
	}
	return post
}

func TestPostLikeDeleteScenario(t *testing.T) {
	router := newTestRouter(t)

	// Create the post.
	w := doJSON(t, router, http.MethodPost, "/api/posts", gin.H{"userName": "alice", "content": "hi"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	post := decodePost(t, w)
	if post.ID == 0 {
		t.Fatalf("post id not assigned: %s", w.Body.String())
	}

	likesPath := fmt.Sprintf("/api/posts/%d/likes", post.ID)
	postPath := fmt.Sprintf("/api/posts/%d", post.ID)

	// First like succeeds.
	if w := doJSON(t, router, http.MethodPost, likesPath, gin.H{"userName": "bob"}); w.Code != http.StatusCreated {
		t.Fatalf("like status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodGet, postPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get post status = %d, want 200", w.Code)
	}
	if got := decodePost(t, w); got.LikeCount != 1 {
		t.Fatalf("likeCount = %d, want 1", got.LikeCount)
	}

	// Second like from the same user is rejected.
	if w := doJSON(t, router, http.MethodPost, likesPath, gin.H{"userName": "bob"}); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate like status = %d, want 400 (body: %s)", w.Code, w.Body.String())
	}

	// Delete the post; everything scoped to it is gone.
	if w := doJSON(t, router, http.MethodDelete, postPath, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete post status = %d, want 204", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, postPath, nil); w.Code != http.StatusNotFound {
		t.Fatalf("get deleted post status = %d, want 404", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, likesPath, gin.H{"userName": "carol"}); w.Code != http.StatusNotFound {
		t.Fatalf("like deleted post status = %d, want 404 (body: %s)", w.Code, w.Body.String())
	}
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/posts/1/comments", gin.H{"userName": "bob", "content": "early"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("comment on missing post status = %d, want 404 (body: %s)", w.Code, w.Body.String())
	}
}

func TestCommentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/posts", gin.H{"userName": "alice", "content": "hi"})
	post := decodePost(t, w)
	commentsPath := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	w = doJSON(t, router, http.MethodPost, commentsPath, gin.H{"userName": "bob", "content": "nice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create comment status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	var comment types.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &comment); err != nil {
		t.Fatalf("failed to decode comment: %v", err)
	}

	commentPath := fmt.Sprintf("%s/%d", commentsPath, comment.ID)
	w = doJSON(t, router, http.MethodPatch, commentPath, gin.H{"content": "edited"})
	if w.Code != http.StatusOK {
		t.Fatalf("update comment status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, commentsPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list comments status = %d, want 200", w.Code)
	}
	var listed []types.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode comments: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "edited" {
		t.Fatalf("unexpected comments: %+v", listed)
	}

	// Comment count shows up on the post.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	if got := decodePost(t, w); got.CommentCount != 1 {
		t.Fatalf("commentCount = %d, want 1", got.CommentCount)
	}

	if w := doJSON(t, router, http.MethodDelete, commentPath, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete comment status = %d, want 204", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, commentPath, nil); w.Code != http.StatusNotFound {
		t.Fatalf("get deleted comment status = %d, want 404", w.Code)
	}
}

func TestUnlikeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/posts", gin.H{"userName": "alice", "content": "hi"})
	post := decodePost(t, w)
	likesPath := fmt.Sprintf("/api/posts/%d/likes", post.ID)

	// Missing userName query parameter.
	if w := doJSON(t, router, http.MethodDelete, likesPath, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("unlike without userName status = %d, want 400", w.Code)
	}
	// Unlike without an existing like.
	if w := doJSON(t, router, http.MethodDelete, likesPath+"?userName=bob", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("unlike without like status = %d, want 400", w.Code)
	}

	if w := doJSON(t, router, http.MethodPost, likesPath, gin.H{"userName": "bob"}); w.Code != http.StatusCreated {
		t.Fatalf("like status = %d, want 201", w.Code)
	}
	if w := doJSON(t, router, http.MethodDelete, likesPath+"?userName=bob", nil); w.Code != http.StatusNoContent {
		t.Fatalf("unlike status = %d, want 204", w.Code)
	}
}

func TestRequestValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "create_post_missing_user", method: http.MethodPost, path: "/api/posts", body: gin.H{"content": "hi"}},
		{name: "create_post_missing_content", method: http.MethodPost, path: "/api/posts", body: gin.H{"userName": "alice"}},
		{name: "update_post_empty_body", method: http.MethodPatch, path: "/api/posts/1", body: gin.H{}},
		{name: "bad_post_id", method: http.MethodGet, path: "/api/posts/abc", body: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, tc.method, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}
