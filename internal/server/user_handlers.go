package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users. Each user carries their owned blogs;
// password hashes never serialize.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	users, err := s.userRepo.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(users)
}
