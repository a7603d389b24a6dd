package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/services"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type CreateCommentRequest struct {
	UserName string `json:"userName" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// GET /api/posts/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	comments, err := h.svc.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /api/posts/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	comment, err := h.svc.CreateComment(c.Request.Context(), postID, req.UserName, req.Content)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GET /api/posts/:id/comments/:commentId
func (h *CommentHandler) GetComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}
	comment, err := h.svc.GetComment(c.Request.Context(), postID, commentID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// PATCH /api/posts/:id/comments/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	comment, err := h.svc.UpdateComment(c.Request.Context(), postID, commentID, req.Content)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DELETE /api/posts/:id/comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(c.Request.Context(), postID, commentID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
