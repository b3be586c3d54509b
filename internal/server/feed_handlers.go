package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed returns the user's feed
// @Summary Get a user's feed
// @Description Published posts by the user and their accepted connections, newest first.
// @Tags feed
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.FeedPost
// @Failure 404 {object} models.ErrorResponse
// @Router /feed/{userId} [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 25)

	feed, err := s.feedService.BuildFeed(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feed)
}
