package service

import (
	"blog_system/internal/domain" // Importing domain models
	"context"                     // Context for store operations
	"errors"                      // Error inspection

	"gorm.io/gorm" // GORM ORM library
)

// PostService provides CRUD operations on posts and enforces that every post
// references an existing user. All ownership and validation checks run
// strictly before the mutating store call, so no orphan post is ever written,
// even transiently.
type PostService struct {
	db *gorm.DB // Entity store handle
}

// NewPostService constructs a PostService on top of the given store
func NewPostService(db *gorm.DB) *PostService { return &PostService{db: db} }

// CreatePostInput carries the fields for a new post. UserID is a pointer so
// an absent owner can be told apart from user id zero.
type CreatePostInput struct {
	Title   string // Post title
	Content string // Post body
	UserID  *uint  // Owning user; mandatory
}

// UpdatePostInput carries a partial update; nil fields are left untouched
type UpdatePostInput struct {
	Title   *string // New title, if supplied
	Content *string // New content, if supplied
	UserID  *uint   // New owner, if supplied
}

// ListPosts returns all posts, each including its author projection
func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := s.db.WithContext(ctx).Preload("Author").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns the post with the given id including its author, or
// (nil, nil) when no such post exists
func (s *PostService) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	err := s.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absence is not an error
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost validates ownership and field constraints, then persists the
// new post. Ownership is mandatory: a missing userId is a validation failure
// and a missing user is a not-found failure, both raised before any write.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*domain.Post, error) {
	if in.UserID == nil {
		return nil, &ValidationError{Field: "userId", Message: "userId is required"}
	}
	exists, err := s.userExists(ctx, *in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Message: "User not found"}
	}
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateContent(in.Content); err != nil {
		return nil, err
	}
	post := domain.Post{Title: in.Title, Content: in.Content, UserID: *in.UserID}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	// Reload the author projection so the response carries it
	if err := s.db.WithContext(ctx).Preload("Author").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost applies the supplied fields to an existing post. Returns
// (nil, nil) when the post does not exist. A change of owner re-validates the
// new user's existence before anything is mutated, so a rejected update
// leaves the stored post untouched.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*domain.Post, error) {
	var post domain.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absence is not an error
	}
	if err != nil {
		return nil, err
	}
	// Ownership re-validation comes first: nothing below may run against a
	// target user that does not exist
	if in.UserID != nil && *in.UserID != post.UserID {
		exists, err := s.userExists(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &NotFoundError{Message: "New user for post not found"}
		}
	}
	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if err := validateContent(*in.Content); err != nil {
			return nil, err
		}
		post.Content = *in.Content
	}
	if in.UserID != nil {
		post.UserID = *in.UserID
	}
	if err := s.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, err
	}
	// Reload the author projection so the response carries it
	if err := s.db.WithContext(ctx).Preload("Author").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post with the given id. Returns (false, nil) when
// the post does not exist.
func (s *PostService) DeletePost(ctx context.Context, id uint) (bool, error) {
	var post domain.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil // Absence is not an error
	}
	if err != nil {
		return false, err
	}
	if err := s.db.WithContext(ctx).Delete(&post).Error; err != nil {
		return false, err
	}
	return true, nil
}

// userExists reports whether a user with the given id is present in the store
func (s *PostService) userExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
