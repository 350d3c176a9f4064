package dto

import "time"

type CreateSpotRequest struct {
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Lat         *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng         *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
}

type SpotImageRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Preview bool   `json:"preview"`
}

type SpotImageResponse struct {
	ID      uint   `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

// SpotSummary is the listing-card shape: one preview URL and a rounded
// average instead of the full image and review sets. AvgRating and
// PreviewImage serialize as null when the spot has no reviews or no flagged
// image.
type SpotSummary struct {
	ID           uint      `json:"id"`
	OwnerID      uint      `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          *float64  `json:"lat"`
	Lng          *float64  `json:"lng"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	AvgRating    *float64  `json:"avgRating"`
	PreviewImage *string   `json:"previewImage"`
}

// SpotDetail is the single-spot shape with eager associations and aggregates.
type SpotDetail struct {
	ID            uint                `json:"id"`
	OwnerID       uint                `json:"ownerId"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Country       string              `json:"country"`
	Lat           *float64            `json:"lat"`
	Lng           *float64            `json:"lng"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         float64             `json:"price"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	NumReviews    int64               `json:"numReviews"`
	AvgStarRating *float64            `json:"avgStarRating"`
	SpotImages    []SpotImageResponse `json:"SpotImages"`
	Owner         UserPublic          `json:"Owner"`
}

type SpotsListResponse struct {
	Spots []SpotSummary `json:"Spots"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}
