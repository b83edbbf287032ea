package service

import (
	"context"
	"errors"

	"bloglist/internal/cache"
	"bloglist/internal/models"
	"bloglist/internal/observability"
	"bloglist/internal/repository"

	"gorm.io/gorm"
)

// missingTokenMessage is surfaced when a mutation arrives without a resolved
// identity.
const missingTokenMessage = "token missing or invalid"

// notOwnerMessage is surfaced when a caller tries to delete a blog they do
// not own. The wording is part of the API contract.
const notOwnerMessage = "Only the creator of the blog can delete this blog"

// BlogService implements blog creation, deletion, and like updates. It holds
// the DB handle directly so ownership checks and deletes run in one
// transaction.
type BlogService struct {
	blogRepo repository.BlogRepository
	userRepo repository.UserRepository
	db       *gorm.DB
}

// NewBlogService returns a new BlogService.
func NewBlogService(blogRepo repository.BlogRepository, userRepo repository.UserRepository, db *gorm.DB) *BlogService {
	return &BlogService{blogRepo: blogRepo, userRepo: userRepo, db: db}
}

// CreateBlogInput holds the fields of a blog creation request. Likes is
// optional and defaults to zero.
type CreateBlogInput struct {
	Title string
	URL   string
	Likes *int
}

// Create persists a new blog owned by the identity. The owner reference is
// fixed at creation; if the owner projection cannot be resolved afterwards
// the write is compensated and a consistency error returned.
func (s *BlogService) Create(ctx context.Context, identity *Identity, in CreateBlogInput) (*models.Blog, error) {
	if !CanCreate(identity) {
		return nil, models.NewUnauthorizedError(missingTokenMessage)
	}

	if in.Title == "" || in.URL == "" {
		return nil, models.NewValidationError("title and url are required")
	}

	likes := 0
	if in.Likes != nil {
		if *in.Likes < 0 {
			return nil, models.NewValidationError("likes must be non-negative")
		}
		likes = *in.Likes
	}

	blog := &models.Blog{
		Title:  in.Title,
		URL:    in.URL,
		Likes:  likes,
		UserID: identity.ID,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	// Reload with the owner projection. If the owner cannot be resolved the
	// forward and inverse references disagree; compensate by removing the
	// blog rather than reporting success on a torn write.
	created, err := s.blogRepo.GetByID(ctx, blog.ID)
	if err != nil {
		if delErr := s.blogRepo.Delete(ctx, blog.ID); delErr != nil {
			return nil, models.NewConsistencyError("blog creation", delErr)
		}
		return nil, models.NewConsistencyError("blog creation", err)
	}

	observability.BlogsCreatedTotal.Inc()
	return created, nil
}

// Delete removes a blog after verifying ownership. The lookup, ownership
// check, and delete run in one transaction so a concurrent delete or owner
// change cannot slip between check and mutation.
func (s *BlogService) Delete(ctx context.Context, identity *Identity, id uint) error {
	if identity == nil {
		return models.NewUnauthorizedError(missingTokenMessage)
	}

	var ownerID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var blog models.Blog
		if err := tx.First(&blog, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Blog", id)
			}
			return models.NewInternalError(err)
		}

		if !CanDelete(identity, &blog) {
			observability.OwnershipDenialsTotal.Inc()
			return models.NewUnauthorizedError(notOwnerMessage)
		}

		ownerID = blog.UserID
		if err := tx.Delete(&blog).Error; err != nil {
			return models.NewConsistencyError("blog deletion", err)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewConsistencyError("blog deletion", err)
	}

	cache.InvalidateBlog(ctx, id)
	cache.InvalidateBlogsList(ctx)
	cache.InvalidateUser(ctx, ownerID)
	observability.BlogsDeletedTotal.Inc()
	return nil
}

// UpdateLikes replaces the like counter. By design this requires no
// authentication or ownership check; any caller may update any blog's likes.
func (s *BlogService) UpdateLikes(ctx context.Context, id uint, likes int) (*models.Blog, error) {
	if likes < 0 {
		return nil, models.NewValidationError("likes must be non-negative")
	}
	return s.blogRepo.UpdateLikes(ctx, id, likes)
}

// List returns all blogs with their owner projections.
func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	return s.blogRepo.List(ctx)
}

// Get returns a single blog by id.
func (s *BlogService) Get(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}
