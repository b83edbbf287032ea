package server

import (
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ResetState handles POST /api/testing/reset. It wipes all blogs and users so
// API test suites start from a clean slate. The route is only mounted when
// APP_ENV is "test".
func (s *Server) ResetState(c *fiber.Ctx) error {
	ctx := c.Context()

	if err := s.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&models.Blog{}).Error; err != nil {
		return s.respondError(c, models.NewInternalError(err))
	}
	if err := s.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return s.respondError(c, models.NewInternalError(err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
