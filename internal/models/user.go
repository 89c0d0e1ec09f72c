package models

import "gorm.io/gorm"

// User roles. Registration always assigns RoleUser; RoleAdmin is granted
// out of band (operator tooling), never through the API.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // bcrypt digest, never the raw password
	Role       string `json:"-" gorm:"type:varchar(20);default:user"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UserSummary is the admin-facing projection of a User.
type UserSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
