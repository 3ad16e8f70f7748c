package service

import (
	"blog_system/internal/domain" // Importing domain models
	"context"                     // Context for store operations
	"errors"                      // Error inspection

	"gorm.io/gorm" // GORM ORM library
)

// UserService provides CRUD operations on users. Uniqueness of username and
// email is enforced with an explicit pre-query before every write; the unique
// indexes on the users table remain as the store-level backstop.
type UserService struct {
	db *gorm.DB // Entity store handle
}

// NewUserService constructs a UserService on top of the given store
func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// CreateUserInput carries the fields for a new user
type CreateUserInput struct {
	Username string // Desired username
	Email    string // Desired email address
}

// UpdateUserInput carries a partial update; nil fields are left untouched
type UpdateUserInput struct {
	Username *string // New username, if supplied
	Email    *string // New email, if supplied
}

// ListUsers returns all users, each including its posts collection
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.db.WithContext(ctx).Preload("Posts").Find(&users).Error; err != nil {
		return nil, err
	}
	// Serialize empty collections as [] rather than null
	for i := range users {
		if users[i].Posts == nil {
			users[i].Posts = []domain.Post{}
		}
	}
	return users, nil
}

// GetUser returns the user with the given id including its posts, or
// (nil, nil) when no such user exists
func (s *UserService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Preload("Posts").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absence is not an error
	}
	if err != nil {
		return nil, err
	}
	if user.Posts == nil {
		user.Posts = []domain.Post{}
	}
	return &user, nil
}

// CreateUser validates the input, checks uniqueness and persists the new
// user. Nothing is written until every check has passed.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := s.checkUsernameFree(ctx, in.Username, 0); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}
	user := domain.User{Username: in.Username, Email: in.Email}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	user.Posts = []domain.Post{} // New users own no posts yet
	return &user, nil
}

// UpdateUser applies the supplied fields to an existing user. Returns
// (nil, nil) when the user does not exist. Validation and uniqueness checks
// run before the row is touched.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absence is not an error
	}
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		if err := validateUsername(*in.Username); err != nil {
			return nil, err
		}
		if err := s.checkUsernameFree(ctx, *in.Username, id); err != nil {
			return nil, err
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		if err := s.checkEmailFree(ctx, *in.Email, id); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	// Reload with the posts collection for the response
	if err := s.db.WithContext(ctx).Preload("Posts").First(&user, id).Error; err != nil {
		return nil, err
	}
	if user.Posts == nil {
		user.Posts = []domain.Post{}
	}
	return &user, nil
}

// DeleteUser removes the user with the given id. Returns (false, nil) when
// the user does not exist. Deleting a user cascades to its posts through the
// foreign key declared on the posts table.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (bool, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil // Absence is not an error
	}
	if err != nil {
		return false, err
	}
	if err := s.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

// checkUsernameFree fails with ConflictError when another user (excluding
// selfID) already holds the username
func (s *UserService) checkUsernameFree(ctx context.Context, username string, selfID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID) // A user may keep its own username
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Field: "username"}
	}
	return nil
}

// checkEmailFree fails with ConflictError when another user (excluding
// selfID) already holds the email
func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID) // A user may keep its own email
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Field: "email"}
	}
	return nil
}
