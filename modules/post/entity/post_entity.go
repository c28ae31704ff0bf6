package entity

import (
	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// Post types.
const (
	PostTypePublic = 1
)

// Post is authored by a client or, for official announcements, by a
// company. Exactly one of AuthorID / CompanyID is set.
type Post struct {
	Title       *string              `db:"title" json:"title,omitempty"`
	Description *string              `db:"description" json:"description,omitempty"`
	Image       *string              `db:"image" json:"image,omitempty"`
	Type        int                  `db:"type" json:"type"`
	AuthorID    *uuid.UUID           `db:"author_id" json:"author_id,omitempty"`
	CompanyID   *uuid.UUID           `db:"company_id" json:"company_id,omitempty"`
	Lifecycle   coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

// FeedPost is a post joined with its author identity and comment count for
// feed rendering.
type FeedPost struct {
	Post
	AuthorName   *string `db:"author_name" json:"author_name,omitempty"`
	AuthorNick   *string `db:"author_nick" json:"author_nick,omitempty"`
	AuthorPhoto  *string `db:"author_photo" json:"author_photo,omitempty"`
	CompanyName  *string `db:"company_name" json:"company_name,omitempty"`
	CommentCount int     `db:"comment_count" json:"comment_count"`
}

type PaginatedFeedEntity = coreEntity.Pagination[FeedPost]
