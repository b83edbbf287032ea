package service

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/models"
	"bloglist/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type blogServiceFixture struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	svc      *BlogService
}

func newBlogServiceFixture(t *testing.T) *blogServiceFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Blog{}))

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	return &blogServiceFixture{
		db:       db,
		userRepo: userRepo,
		svc:      NewBlogService(blogRepo, userRepo, db),
	}
}

func (f *blogServiceFixture) createUser(t *testing.T, username string) *Identity {
	t.Helper()
	user := &models.User{Username: username, Password: "hash"}
	require.NoError(t, f.userRepo.Create(context.Background(), user))
	return &Identity{ID: user.ID, Username: user.Username}
}

func intPtr(v int) *int { return &v }

func TestBlogService_CreateSetsOwner(t *testing.T) {
	f := newBlogServiceFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "writer")

	blog, err := f.svc.Create(ctx, owner, CreateBlogInput{
		Title: "Canonical string reduction",
		URL:   "https://example.com/canonical",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, blog.UserID)
	assert.Equal(t, 0, blog.Likes)
	assert.Equal(t, "writer", blog.User.Username)

	// the blog shows up under the owner
	user, err := f.userRepo.GetByIDWithBlogs(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, user.Blogs, 1)
	assert.Equal(t, blog.ID, user.Blogs[0].ID)
}

func TestBlogService_CreateWithLikes(t *testing.T) {
	f := newBlogServiceFixture(t)
	owner := f.createUser(t, "writer")

	blog, err := f.svc.Create(context.Background(), owner, CreateBlogInput{
		Title: "t", URL: "https://example.com", Likes: intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, blog.Likes)

	_, err = f.svc.Create(context.Background(), owner, CreateBlogInput{
		Title: "t", URL: "https://example.com", Likes: intPtr(-1),
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestBlogService_CreateValidation(t *testing.T) {
	f := newBlogServiceFixture(t)
	owner := f.createUser(t, "writer")

	cases := []CreateBlogInput{
		{Title: "", URL: "https://example.com"},
		{Title: "t", URL: ""},
	}
	for _, in := range cases {
		_, err := f.svc.Create(context.Background(), owner, in)
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}

func TestBlogService_CreateRequiresIdentity(t *testing.T) {
	f := newBlogServiceFixture(t)

	_, err := f.svc.Create(context.Background(), nil, CreateBlogInput{
		Title: "t", URL: "https://example.com",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "token missing or invalid", appErr.Message)
}

func TestBlogService_DeleteByOwner(t *testing.T) {
	f := newBlogServiceFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "writer")

	blog, err := f.svc.Create(ctx, owner, CreateBlogInput{Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, owner, blog.ID))

	_, err = f.svc.Get(ctx, blog.ID)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// gone from the owner's blogs as well
	user, err := f.userRepo.GetByIDWithBlogs(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, user.Blogs)
}

func TestBlogService_DeleteByNonOwner(t *testing.T) {
	f := newBlogServiceFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "writer")
	intruder := f.createUser(t, "intruder")

	blog, err := f.svc.Create(ctx, owner, CreateBlogInput{Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, intruder, blog.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "Only the creator of the blog can delete this blog", appErr.Message)

	// nothing changed
	got, err := f.svc.Get(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.ID, got.ID)
}

func TestBlogService_DeleteWithoutIdentity(t *testing.T) {
	f := newBlogServiceFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "writer")

	blog, err := f.svc.Create(ctx, owner, CreateBlogInput{Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, nil, blog.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "token missing or invalid", appErr.Message)
}

func TestBlogService_DeleteMissingBlog(t *testing.T) {
	f := newBlogServiceFixture(t)
	owner := f.createUser(t, "writer")

	err := f.svc.Delete(context.Background(), owner, 4242)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestBlogService_UpdateLikes(t *testing.T) {
	f := newBlogServiceFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "writer")

	blog, err := f.svc.Create(ctx, owner, CreateBlogInput{Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	updated, err := f.svc.UpdateLikes(ctx, blog.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Likes)

	// replaying the same value changes nothing
	updated, err = f.svc.UpdateLikes(ctx, blog.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Likes)

	_, err = f.svc.UpdateLikes(ctx, blog.ID, -3)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestBlogService_List(t *testing.T) {
	f := newBlogServiceFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "writer")

	for _, title := range []string{"one", "two"} {
		_, err := f.svc.Create(ctx, owner, CreateBlogInput{Title: title, URL: "https://example.com/" + title})
		require.NoError(t, err)
	}

	blogs, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "one", blogs[0].Title)
}
