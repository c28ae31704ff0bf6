package dto

import (
	"social-events-api/modules/post/entity"
)

// CreatePostRequest publishes a post. At least one of title, description
// or image is required. AsCompany posts on behalf of the caller's company.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Type        int    `json:"type"`
	AsCompany   bool   `json:"as_company"`
}

// UpdatePostRequest edits an existing post. Empty fields keep their
// current value.
type UpdatePostRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Type        int    `json:"type"`
}

// PostResponse carries the stored (possibly redacted) post and whether the
// submitted text tripped the content filter.
type PostResponse struct {
	Post     entity.Post `json:"post"`
	Censored bool        `json:"censored"`
}
