package repository

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestBlogRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	blogRepo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "writer")

	blog := &models.Blog{Title: "Go Proverbs", URL: "https://go-proverbs.github.io", UserID: owner.ID}
	require.NoError(t, blogRepo.Create(ctx, blog))
	assert.NotZero(t, blog.ID)

	got, err := blogRepo.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Proverbs", got.Title)
	assert.Equal(t, 0, got.Likes)
	assert.Equal(t, owner.ID, got.UserID)
	// owner projection comes preloaded
	assert.Equal(t, "writer", got.User.Username)
}

func TestBlogRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	blogRepo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "writer")
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, blogRepo.Create(ctx, &models.Blog{
			Title: title, URL: "https://example.com/" + title, UserID: owner.ID,
		}))
	}

	blogs, err := blogRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 3)
	assert.Equal(t, "a", blogs[0].Title)
	assert.Equal(t, "c", blogs[2].Title)
}

func TestBlogRepository_UpdateLikes(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	blogRepo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "writer")
	blog := &models.Blog{Title: "t", URL: "https://example.com", UserID: owner.ID}
	require.NoError(t, blogRepo.Create(ctx, blog))

	updated, err := blogRepo.UpdateLikes(ctx, blog.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Likes)

	// setting the same value again is a no-op, not an error
	updated, err = blogRepo.UpdateLikes(ctx, blog.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Likes)
}

func TestBlogRepository_UpdateLikesNotFound(t *testing.T) {
	db := setupTestDB(t)
	blogRepo := NewBlogRepository(db)

	_, err := blogRepo.UpdateLikes(context.Background(), 42, 1)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestBlogRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	blogRepo := NewBlogRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, userRepo, "writer")
	blog := &models.Blog{Title: "t", URL: "https://example.com", UserID: owner.ID}
	require.NoError(t, blogRepo.Create(ctx, blog))

	require.NoError(t, blogRepo.Delete(ctx, blog.ID))

	_, err := blogRepo.GetByID(ctx, blog.ID)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// the owner no longer references the deleted blog
	got, err := userRepo.GetByIDWithBlogs(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Blogs)
}
