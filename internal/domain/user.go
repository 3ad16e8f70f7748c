package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"` // Unique username
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`   // Unique email address
	CreatedAt time.Time `json:"createdAt"`                            // Timestamp of creation
	UpdatedAt time.Time `json:"updatedAt"`                            // Timestamp of last update
	// One-to-many relationship with Post; deleting a user cascades to its posts
	Posts []Post `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"posts"`
}
