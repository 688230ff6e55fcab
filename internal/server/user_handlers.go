package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
// @Summary List community members
// @Description Users ordered by follower count, most followed first
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id
// @Summary Get a member profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// ToggleFollow handles POST /api/users/:id/follow
// @Summary Toggle following a member
// @Description Follows the member if not yet followed, unfollows otherwise
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{following=bool}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/follow [post]
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.userService.ToggleFollow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// GetFollowStatus handles GET /api/users/:id/follow-status
// @Summary Check whether the caller follows a member
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{following=bool}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/follow-status [get]
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.userService.FollowStatus(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}
