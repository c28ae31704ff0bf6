package dto

import (
	"social-events-api/modules/comment/entity"
)

// CreateCommentRequest posts a comment, or a reply when ParentCommentID
// is set.
type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required"`
	PostID          string `json:"post_id" validate:"required"`
	ParentCommentID string `json:"parent_comment_id"`
}

// UpdateCommentRequest edits the caller's own comment.
type UpdateCommentRequest struct {
	CommentID string `json:"comment_id" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

// CommentResponse carries the stored (possibly redacted) comment and
// whether the submitted text tripped the content filter.
type CommentResponse struct {
	Comment  entity.Comment `json:"comment"`
	Censored bool           `json:"censored"`
}
