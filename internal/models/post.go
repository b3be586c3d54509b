package models

import (
	"time"
)

// Post is a piece of content authored by a user. Draft posts are private to
// their author until published; publishing is a one-way flag flip.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	Image     string    `json:"image,omitempty"`
	Draft     bool      `gorm:"not null;default:false" json:"draft"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}

// FeedPost is a published post enriched with its author's profile projection.
type FeedPost struct {
	ID        uint        `json:"id"`
	Content   string      `json:"content"`
	Image     string      `json:"image,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Author    UserSummary `json:"author"`
}

// FeedView returns the enriched projection of a post whose Author
// association has been loaded.
func (p *Post) FeedView() FeedPost {
	return FeedPost{
		ID:        p.ID,
		Content:   p.Content,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		Author:    p.Author.Summary(),
	}
}
