package models

import (
	"time"
)

// User owns spots and reviews. HashedPassword is never serialized; the
// projection package decides which of the remaining fields a caller may see.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:30;not null;uniqueIndex" json:"username"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName      string    `gorm:"size:50;not null" json:"firstName"`
	LastName       string    `gorm:"size:50;not null" json:"lastName"`
	HashedPassword string    `gorm:"size:60;not null" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Spots   []Spot   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
