package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPeopleSuggestions returns connection suggestions
// @Summary Suggest people to connect with
// @Description Non-admin users with no edge to the requester in any state.
// @Tags discovery
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.UserSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /people/{userId} [get]
func (s *Server) GetPeopleSuggestions(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	people, err := s.graphService.SuggestPeople(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(people)
}

// GetOtherUsers returns all other non-admin users
// @Summary List other users
// @Description Every non-admin user except the requester, including users with edges in flight.
// @Tags discovery
// @Produce json
// @Param currentUserId path int true "Current user ID"
// @Success 200 {array} models.UserSummary
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{currentUserId} [get]
func (s *Server) GetOtherUsers(c *fiber.Ctx) error {
	currentUserID, err := s.parseID(c, "currentUserId")
	if err != nil {
		return nil
	}

	users, err := s.graphService.ListOthers(c.UserContext(), currentUserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}
