package server

import (
	"linkhive/internal/models"
	"linkhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns a user's profile
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{userId} [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile applies partial profile updates
// @Summary Update a profile
// @Description Fields omitted from the body are left unchanged.
// @Tags profiles
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body service.UpdateProfileInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{userId} [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var in service.UpdateProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
