package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/services"
)

type PostHandler struct {
	svc services.PostService
}

func NewPostHandler(svc services.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type CreatePostRequest struct {
	UserName string `json:"userName" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return id, true
}

// GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPosts(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	post, err := h.svc.CreatePost(c.Request.Context(), req.UserName, req.Content)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, err := h.svc.GetPost(c.Request.Context(), postID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// PATCH /api/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	post, err := h.svc.UpdatePost(c.Request.Context(), postID, req.Content)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePost(c.Request.Context(), postID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
