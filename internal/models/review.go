package models

import (
	"time"
)

// Review is a star rating with text left by a user on a spot. The composite
// unique index is the authoritative enforcement of one review per user per
// spot; the write-time check in the rules package is only a fast path.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SpotID    uint      `gorm:"not null;uniqueIndex:idx_reviews_spot_user" json:"spotId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_spot_user" json:"userId"`
	Review    string    `gorm:"size:500;not null" json:"review"`
	Stars     int       `gorm:"not null" json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Spot         Spot          `gorm:"foreignKey:SpotID" json:"-"`
	ReviewImages []ReviewImage `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

// OwnedBy reports the user allowed to mutate this review.
func (r *Review) OwnedBy() uint { return r.UserID }
