package dto

import "time"

type CreateReviewRequest struct {
	Review string `json:"review" validate:"required,max=500"`
	Stars  int    `json:"stars" validate:"required,gte=1,lte=5"`
}

type ReviewImageRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Preview bool   `json:"preview"`
}

type ReviewImageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// ReviewResponse nests the reviewer's public profile and the review's images.
// Spot is only populated on the current-user listing.
type ReviewResponse struct {
	ID           uint                  `json:"id"`
	UserID       uint                  `json:"userId"`
	SpotID       uint                  `json:"spotId"`
	Review       string                `json:"review"`
	Stars        int                   `json:"stars"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	User         UserPublic            `json:"User"`
	ReviewImages []ReviewImageResponse `json:"ReviewImages"`
	Spot         *SpotSummary          `json:"Spot,omitempty"`
}

type ReviewsListResponse struct {
	Reviews []ReviewResponse `json:"Reviews"`
}
