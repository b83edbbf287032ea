package repository

import (
	"context"
	"errors"

	"bloglist/internal/cache"
	"bloglist/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
	UpdateLikes(ctx context.Context, id uint, likes int) (*models.Blog, error)
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlogsList(ctx)
	cache.InvalidateUser(ctx, blog.UserID)
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	key := cache.BlogKey(id)

	err := cache.Aside(ctx, key, &blog, cache.BlogTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("User").First(&blog, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Blog", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at ASC, id ASC").
		Find(&blogs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

func (r *blogRepository) UpdateLikes(ctx context.Context, id uint, likes int) (*models.Blog, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		Update("likes", likes)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Blog", id)
	}

	cache.InvalidateBlog(ctx, id)
	cache.InvalidateBlogsList(ctx)

	var blog models.Blog
	if err := r.db.WithContext(ctx).Preload("User").First(&blog, id).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Blog", id)
		}
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Delete(&blog).Error; err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateBlog(ctx, id)
	cache.InvalidateBlogsList(ctx)
	cache.InvalidateUser(ctx, blog.UserID)
	return nil
}
