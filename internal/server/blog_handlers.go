package server

import (
	"bloglist/internal/models"
	"bloglist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBlogs handles GET /api/blogs
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.List(c.Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(blogs)
}

// GetBlog handles GET /api/blogs/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blog, err := s.blogService.Get(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(blog)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	identity := identityFromLocals(c)

	var req struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Likes *int   `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.Create(c.Context(), identity, service.CreateBlogInput{
		Title: req.Title,
		URL:   req.URL,
		Likes: req.Likes,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	identity := identityFromLocals(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.Delete(c.Context(), identity, id); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateBlogLikes handles PUT /api/blogs/:id
// No authentication is required here on purpose: the like counter is open to
// any caller.
func (s *Server) UpdateBlogLikes(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Likes *int `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Likes == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("likes is required"))
	}

	blog, err := s.blogService.UpdateLikes(c.Context(), id, *req.Likes)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(blog)
}
