package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type likeKey struct {
	postID   int64
	userName string
}

// MemoryStore is the transient entity store. A single mutex is the
// transactional boundary: every mutation holds the write lock for its whole
// critical section, so the cascade on post delete is atomic with respect to
// readers. State lives only for the process lifetime.
type MemoryStore struct {
	mu            sync.RWMutex
	posts         map[int64]*types.Post
	comments      map[int64]*types.Comment
	likes         map[likeKey]time.Time
	nextPostID    int64
	nextCommentID int64
	log           *logger.Logger
}

func NewMemoryStore(baseLog *logger.Logger) *MemoryStore {
	return &MemoryStore{
		posts:    make(map[int64]*types.Post),
		comments: make(map[int64]*types.Comment),
		likes:    make(map[likeKey]time.Time),
		log:      baseLog.With("store", "MemoryStore"),
	}
}

func copyPost(p *types.Post) *types.Post {
	cp := *p
	return &cp
}

func copyComment(c *types.Comment) *types.Comment {
	cp := *c
	return &cp
}

func (s *MemoryStore) CreatePost(ctx context.Context, userName, content string) (*types.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	now := time.Now().UTC()
	post := &types.Post{
		ID:        s.nextPostID,
		UserName:  userName,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.posts[post.ID] = post
	return copyPost(post), nil
}

func (s *MemoryStore) GetPost(ctx context.Context, postID int64) (*types.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, types.ErrPostNotFound
	}
	return copyPost(post), nil
}

func (s *MemoryStore) ListPosts(ctx context.Context) ([]*types.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*types.Post, 0, len(s.posts))
	for _, post := range s.posts {
		results = append(results, copyPost(post))
	}
	// IDs are assigned monotonically, so newest-first is descending id.
	sort.Slice(results, func(i, j int) bool { return results[i].ID > results[j].ID })
	return results, nil
}

func (s *MemoryStore) UpdatePost(ctx context.Context, postID int64, content string) (*types.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, types.ErrPostNotFound
	}
	post.Content = content
	post.UpdatedAt = time.Now().UTC()
	return copyPost(post), nil
}

func (s *MemoryStore) DeletePost(ctx context.Context, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return types.ErrPostNotFound
	}
	delete(s.posts, postID)
	for id, comment := range s.comments {
		if comment.PostID == postID {
			delete(s.comments, id)
		}
	}
	for key := range s.likes {
		if key.postID == postID {
			delete(s.likes, key)
		}
	}
	return nil
}

func (s *MemoryStore) CreateComment(ctx context.Context, postID int64, userName, content string) (*types.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, types.ErrPostNotFound
	}
	s.nextCommentID++
	now := time.Now().UTC()
	comment := &types.Comment{
		ID:        s.nextCommentID,
		PostID:    postID,
		UserName:  userName,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.comments[comment.ID] = comment
	return copyComment(comment), nil
}

func (s *MemoryStore) GetComment(ctx context.Context, postID, commentID int64) (*types.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, types.ErrCommentNotFound
	}
	return copyComment(comment), nil
}

func (s *MemoryStore) ListComments(ctx context.Context, postID int64) ([]*types.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, types.ErrPostNotFound
	}
	results := make([]*types.Comment, 0)
	for _, comment := range s.comments {
		if comment.PostID == postID {
			results = append(results, copyComment(comment))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func (s *MemoryStore) UpdateComment(ctx context.Context, postID, commentID int64, content string) (*types.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, types.ErrCommentNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	return copyComment(comment), nil
}

func (s *MemoryStore) DeleteComment(ctx context.Context, postID, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.PostID != postID {
		return types.ErrCommentNotFound
	}
	delete(s.comments, commentID)
	return nil
}

func (s *MemoryStore) AddLike(ctx context.Context, postID int64, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return types.ErrPostNotFound
	}
	key := likeKey{postID: postID, userName: userName}
	if _, ok := s.likes[key]; ok {
		return types.ErrAlreadyLiked
	}
	s.likes[key] = time.Now().UTC()
	return nil
}

func (s *MemoryStore) RemoveLike(ctx context.Context, postID int64, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return types.ErrPostNotFound
	}
	key := likeKey{postID: postID, userName: userName}
	if _, ok := s.likes[key]; !ok {
		return types.ErrNotLiked
	}
	delete(s.likes, key)
	return nil
}

func (s *MemoryStore) Counts(ctx context.Context, postID int64) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var likeCount, commentCount int64
	for key := range s.likes {
		if key.postID == postID {
			likeCount++
		}
	}
	for _, comment := range s.comments {
		if comment.PostID == postID {
			commentCount++
		}
	}
	return likeCount, commentCount, nil
}
