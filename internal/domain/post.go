package domain

import "time"

// Author is the subset of User fields a post exposes about its owner.
// It reads from the users table so it can be preloaded like a relation
// without leaking the rest of the User record.
type Author struct {
	ID       uint   `gorm:"primaryKey" json:"id"` // User primary key
	Username string `json:"username"`             // Username of the author
	Email    string `json:"email"`                // Email of the author
}

// TableName maps the Author projection onto the users table
func (Author) TableName() string { return "users" }

// Post Model
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`          // Primary key
	Title     string    `gorm:"size:255;not null" json:"title"` // Post title
	Content   string    `gorm:"type:text;not null" json:"content"` // Post body
	UserID    uint      `gorm:"not null;index" json:"userId"`  // Foreign key to the owning User
	CreatedAt time.Time `json:"createdAt"`                     // Timestamp of creation
	UpdatedAt time.Time `json:"updatedAt"`                     // Timestamp of last update
	// Owning user, exposed as the trimmed Author projection; omitted when not
	// preloaded (posts nested inside a user response)
	Author Author `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author,omitzero"`
}
