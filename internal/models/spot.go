package models

import (
	"time"
)

// Spot is a rentable listing. Lat/Lng are nullable; listings created before
// geocoding was added have neither.
type Spot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"ownerId"`
	Address     string    `gorm:"size:255;not null" json:"address"`
	City        string    `gorm:"size:100;not null" json:"city"`
	State       string    `gorm:"size:100;not null" json:"state"`
	Country     string    `gorm:"size:100;not null" json:"country"`
	Lat         *float64  `gorm:"type:decimal(10,7)" json:"lat"`
	Lng         *float64  `gorm:"type:decimal(10,7)" json:"lng"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Owner      User        `gorm:"foreignKey:OwnerID" json:"-"`
	SpotImages []SpotImage `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE" json:"-"`
}

// OwnedBy reports the user allowed to mutate this spot.
func (s *Spot) OwnedBy() uint { return s.OwnerID }
