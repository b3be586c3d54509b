package service

import (
	"context"

	"linkhive/internal/models"
	"linkhive/internal/observability"
	"linkhive/internal/repository"
)

// ConnectionService manages the connection request lifecycle.
type ConnectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

// NewConnectionService creates a new connection service instance.
func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *ConnectionService {
	return &ConnectionService{connRepo: connRepo, userRepo: userRepo}
}

// ConnectResult carries the edge plus whether this call created it.
type ConnectResult struct {
	Connection *models.Connection
	Created    bool
}

// Connect sends a connection request from sender to receiver. If an edge
// already exists between the pair in either direction, the existing edge is
// returned unchanged instead of an error.
func (s *ConnectionService) Connect(ctx context.Context, senderID, receiverID uint) (*ConnectResult, error) {
	if senderID == receiverID {
		return nil, models.NewValidationError("Cannot connect to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, senderID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	existing, err := s.connRepo.GetBetweenUsers(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ConnectResult{Connection: existing, Created: false}, nil
	}

	conn := &models.Connection{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.ConnectionStatusPending,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}

	observability.ConnectionTransitions.WithLabelValues("requested").Inc()
	return &ConnectResult{Connection: conn, Created: true}, nil
}

// Accept marks a pending request as accepted. Accepting an edge that is not
// pending is a conflict.
func (s *ConnectionService) Accept(ctx context.Context, connectionID uint) (*models.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.Status != models.ConnectionStatusPending {
		return nil, models.NewConflictError("Connection request is not pending")
	}

	if err := s.connRepo.UpdateStatus(ctx, connectionID, models.ConnectionStatusAccepted); err != nil {
		return nil, err
	}
	conn.Status = models.ConnectionStatusAccepted

	observability.ConnectionTransitions.WithLabelValues("accepted").Inc()
	return conn, nil
}

// Ignore removes the edge entirely. The sender may ask again later.
func (s *ConnectionService) Ignore(ctx context.Context, connectionID uint) error {
	if _, err := s.connRepo.GetByID(ctx, connectionID); err != nil {
		return err
	}
	if err := s.connRepo.Delete(ctx, connectionID); err != nil {
		return err
	}
	observability.ConnectionTransitions.WithLabelValues("ignored").Inc()
	return nil
}
