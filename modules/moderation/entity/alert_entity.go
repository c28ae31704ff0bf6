package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubjectKind distinguishes which content type an alert refers to.
type SubjectKind string

const (
	SubjectPost    SubjectKind = "post"
	SubjectComment SubjectKind = "comment"
)

// SubjectRef points at exactly one piece of content.
type SubjectRef struct {
	Kind SubjectKind
	ID   uuid.UUID
}

// PostRef builds a reference to a post.
func PostRef(id uuid.UUID) SubjectRef {
	return SubjectRef{Kind: SubjectPost, ID: id}
}

// CommentRef builds a reference to a comment.
func CommentRef(id uuid.UUID) SubjectRef {
	return SubjectRef{Kind: SubjectComment, ID: id}
}

// ModerationAlert preserves the original text of content that failed the
// filter. Exactly one of PostID / PostCommentID is set. Alerts are never
// deleted by normal flows.
type ModerationAlert struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Text          string     `db:"text" json:"text"`
	UpdatedText   *string    `db:"updated_text" json:"updated_text,omitempty"`
	PostID        *uuid.UUID `db:"post_id" json:"post_id,omitempty"`
	PostCommentID *uuid.UUID `db:"post_comment_id" json:"post_comment_id,omitempty"`
	ClientID      uuid.UUID  `db:"client_id" json:"client_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
