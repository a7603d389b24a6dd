package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// respondDomainError maps the expected domain outcomes onto HTTP statuses;
// everything else is a storage failure and surfaces as a 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrPostNotFound):
		RespondError(c, http.StatusNotFound, "post_not_found", err)
	case errors.Is(err, types.ErrCommentNotFound):
		RespondError(c, http.StatusNotFound, "comment_not_found", err)
	case errors.Is(err, types.ErrAlreadyLiked):
		RespondError(c, http.StatusBadRequest, "already_liked", err)
	case errors.Is(err, types.ErrNotLiked):
		RespondError(c, http.StatusBadRequest, "not_liked", err)
	case errors.Is(err, types.ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
