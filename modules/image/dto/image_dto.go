package dto

// AddImageRequest appends an already-uploaded object URL to the caller's
// gallery.
type AddImageRequest struct {
	URL string `json:"url" validate:"required"`
}

// DeleteImageRequest soft-deletes one of the caller's images.
type DeleteImageRequest struct {
	ImageID string `json:"image_id" validate:"required"`
}

// ReorderImagesRequest repositions the caller's gallery.
type ReorderImagesRequest struct {
	Images []ImageOrder `json:"images" validate:"required"`
}

// ImageOrder pairs an image with its new position.
type ImageOrder struct {
	ID       string `json:"id" validate:"required"`
	Position int    `json:"position"`
}
