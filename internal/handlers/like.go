package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/services"
)

type LikeHandler struct {
	svc services.LikeService
}

func NewLikeHandler(svc services.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

type LikeRequest struct {
	UserName string `json:"userName" binding:"required"`
}

// POST /api/posts/:id/likes
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.svc.LikePost(c.Request.Context(), postID, req.UserName); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DELETE /api/posts/:id/likes?userName=...
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userName := c.Query("userName")
	if userName == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("userName query parameter is required"))
		return
	}
	if err := h.svc.UnlikePost(c.Request.Context(), postID, userName); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
