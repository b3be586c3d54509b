// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role determines what a user account is allowed to do. Admin accounts are
// operational accounts: they never show up in discovery lists and their
// connection invitations are suppressed.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"
	// RoleAdmin marks operational accounts created by the bootstrap process.
	RoleAdmin Role = "admin"
)

// User represents a registered member.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Headline     string    `json:"headline"`
	Education    string    `json:"education"`
	Bio          string    `json:"bio"`
	ProfileImage string    `json:"profile_image"`
	Role         Role      `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the lightweight profile projection attached to feed posts,
// invitations and discovery lists. It must never carry credentials.
type UserSummary struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Headline     string `json:"headline,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Headline:     u.Headline,
		ProfileImage: u.ProfileImage,
	}
}
