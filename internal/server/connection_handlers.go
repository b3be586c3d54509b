package server

import (
	"linkhive/internal/models"

	"github.com/gofiber/fiber/v2"
)

type connectRequest struct {
	SenderID   uint `json:"sender_id"`
	ReceiverID uint `json:"receiver_id"`
}

// GetMutualCount returns the number of shared connections
// @Summary Count mutual connections
// @Description Size of the intersection of both users' accepted peer sets. Symmetric.
// @Tags connections
// @Produce json
// @Param userId path int true "User ID"
// @Param otherId path int true "Other user ID"
// @Success 200 {object} map[string]int
// @Failure 400 {object} models.ErrorResponse
// @Router /mutual/{userId}/{otherId} [get]
func (s *Server) GetMutualCount(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	count, err := s.graphService.MutualCount(c.UserContext(), userID, otherID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"mutual": count})
}

// GetInvitations returns pending invitations addressed to the user
// @Summary List pending invitations
// @Description Pending connection requests received by the user, with sender profiles. Admin senders are filtered out.
// @Tags connections
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Invitation
// @Failure 400 {object} models.ErrorResponse
// @Router /invitations/{userId} [get]
func (s *Server) GetInvitations(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	invitations, err := s.graphService.PendingInvitations(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(invitations)
}

// Connect sends a connection request
// @Summary Send a connection request
// @Description Creates a pending edge. If any edge already exists between the pair, it is returned as-is with status 200.
// @Tags connections
// @Accept json
// @Produce json
// @Param request body connectRequest true "Sender and receiver"
// @Success 200 {object} models.Connection "existing edge"
// @Success 201 {object} models.Connection "new request"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /connect [post]
func (s *Server) Connect(c *fiber.Ctx) error {
	var req connectRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SenderID == 0 || req.ReceiverID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("sender_id and receiver_id are required"))
	}

	result, err := s.connectionService.Connect(c.UserContext(), req.SenderID, req.ReceiverID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(result.Connection)
}

// AcceptConnection accepts a pending request
// @Summary Accept a connection request
// @Tags connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} models.Connection
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /accept/{id} [put]
func (s *Server) AcceptConnection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	conn, err := s.connectionService.Accept(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(conn)
}

// IgnoreConnection deletes a connection edge
// @Summary Ignore a connection request
// @Description Removes the edge entirely so the sender may ask again later.
// @Tags connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /ignore/{id} [delete]
func (s *Server) IgnoreConnection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.connectionService.Ignore(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Connection request ignored"})
}
