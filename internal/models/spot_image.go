package models

import (
	"time"
)

// SpotImage is a bare URL attached to a spot. Preview marks the thumbnail
// shown on listing cards; the schema does not stop multiple images from
// carrying the flag, the projection layer tie-breaks on lowest id.
type SpotImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SpotID    uint      `gorm:"not null;index" json:"spotId"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Preview   bool      `gorm:"default:false" json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
