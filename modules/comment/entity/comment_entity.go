package entity

import (
	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// Comment types.
const (
	TypeComment = 1
	TypeReply   = 2
)

// Comment is a client-authored comment on a post, or a reply to another
// comment when ParentCommentID is set.
type Comment struct {
	Content         string               `db:"content" json:"content"`
	PostID          uuid.UUID            `db:"post_id" json:"post_id"`
	AuthorID        uuid.UUID            `db:"author_id" json:"author_id"`
	ParentCommentID *uuid.UUID           `db:"parent_comment_id" json:"parent_comment_id,omitempty"`
	Type            int                  `db:"type" json:"type"`
	Lifecycle       coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

// CommentWithAuthor joins the author's public profile.
type CommentWithAuthor struct {
	Comment
	AuthorName  string  `db:"author_name" json:"author_name"`
	AuthorNick  string  `db:"author_nick" json:"author_nick"`
	AuthorPhoto *string `db:"author_photo" json:"author_photo,omitempty"`
}

// ThreadedComment is a root comment with its replies attached.
type ThreadedComment struct {
	CommentWithAuthor
	Replies []CommentWithAuthor `json:"replies"`
}
