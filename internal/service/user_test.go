package service

import (
	"blog_system/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotNil(t, user.Posts)
	assert.Empty(t, user.Posts)
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	cases := []struct {
		name  string
		in    CreateUserInput
		field string
	}{
		{"missing username", CreateUserInput{Email: "a@x.com"}, "username"},
		{"username too short", CreateUserInput{Username: "ab", Email: "a@x.com"}, "username"},
		{"missing email", CreateUserInput{Username: "alice"}, "email"},
		{"invalid email", CreateUserInput{Username: "alice", Email: "not-an-email"}, "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tc.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestCreateUserConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	seedUser(t, db, "alice", "a@x.com")

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "alice", Email: "other@x.com"})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "username", ce.Field)

	_, err = svc.CreateUser(ctx, CreateUserInput{Username: "bob", Email: "a@x.com"})
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Field)
}

func TestGetUserAbsent(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.GetUser(context.Background(), 42)
	require.NoError(t, err) // Absence is a nil result, not an error
	assert.Nil(t, user)
}

func TestGetUserIncludesPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	owner := seedUser(t, db, "alice", "a@x.com")
	seedPost(t, db, owner.ID, "Hello World", "0123456789")

	user, err := svc.GetUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Len(t, user.Posts, 1)
	assert.Equal(t, "Hello World", user.Posts[0].Title)
}

func TestListUsersIncludesEmptyPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "alice", "a@x.com")

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotNil(t, users[0].Posts) // Serialized as [], never null
}

func TestUpdateUserPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	u := seedUser(t, db, "alice", "a@x.com")

	updated, err := svc.UpdateUser(context.Background(), u.ID, UpdateUserInput{Email: ptr("new@x.com")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "alice", updated.Username) // Untouched
	assert.Equal(t, "new@x.com", updated.Email)
}

func TestUpdateUserAbsent(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	updated, err := svc.UpdateUser(context.Background(), 42, UpdateUserInput{Username: ptr("ghost")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateUserConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "alice", "a@x.com")
	bob := seedUser(t, db, "bob", "b@x.com")

	_, err := svc.UpdateUser(context.Background(), bob.ID, UpdateUserInput{Username: ptr("alice")})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "username", ce.Field)
}

func TestUpdateUserKeepsOwnValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	u := seedUser(t, db, "alice", "a@x.com")

	// Re-submitting the current username must not conflict with itself
	updated, err := svc.UpdateUser(context.Background(), u.ID, UpdateUserInput{Username: ptr("alice")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "alice", updated.Username)
}

func TestDeleteUserAbsent(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	deleted, err := svc.DeleteUser(context.Background(), 42)
	require.NoError(t, err) // Absence is a false result, not an error
	assert.False(t, deleted)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	owner := seedUser(t, db, "alice", "a@x.com")
	other := seedUser(t, db, "bob", "b@x.com")
	seedPost(t, db, owner.ID, "Hello World", "0123456789")
	seedPost(t, db, owner.ID, "Second post", "more content here")
	kept := seedPost(t, db, other.ID, "Bob's post", "bob's content")

	deleted, err := svc.DeleteUser(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// All of alice's posts went with her; bob's survived
	var count int64
	require.NoError(t, db.Model(&domain.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	var remaining domain.Post
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, kept.ID, remaining.ID)
}
