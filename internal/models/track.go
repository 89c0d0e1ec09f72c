package models

import "gorm.io/gorm"

// Track represents a saved music track reference. Every track belongs to
// exactly one user; OwnerID is set from the authenticated caller at
// creation and never changes.
type Track struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID    string `json:"owner_id" gorm:"index;type:varchar(36);not null" validate:"required,uuid"`
	SpotifyID  string `json:"spotify_id" gorm:"type:varchar(100)" validate:"required"`
	Title      string `json:"title" gorm:"type:varchar(255)" validate:"required"`
	Artist     string `json:"artist" gorm:"type:varchar(255)" validate:"required"`
	Album      string `json:"album" gorm:"type:varchar(255)" validate:"required"`
	ImageURL   string `json:"image_url" gorm:"type:varchar(512)" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
