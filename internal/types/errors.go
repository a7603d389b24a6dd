package types

import "errors"

// Expected domain outcomes. Handlers map these to HTTP status codes;
// anything else is treated as an internal storage failure.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post already liked by this user")
	ErrNotLiked        = errors.New("post not liked by this user")
	ErrInvalidInput    = errors.New("invalid input")
)
