package models

import (
	"time"
)

// ReviewImage is a photo attached to a review, capped at ten per review by
// the rules package.
type ReviewImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null;index" json:"reviewId"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Preview   bool      `gorm:"default:false" json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
