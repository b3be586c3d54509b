package repository

import (
	"context"
	"errors"

	"linkhive/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository defines the interface for connection edge data access.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Connection, error)
	GetByParticipant(ctx context.Context, userID uint) ([]models.Connection, error)
	GetAcceptedByParticipant(ctx context.Context, userID uint) ([]models.Connection, error)
	GetPendingForReceiver(ctx context.Context, receiverID uint) ([]models.Connection, error)
	UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error
	Delete(ctx context.Context, id uint) error
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository instance.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		// The composite unique index on (sender_id, receiver_id) catches
		// concurrent duplicate requests that slipped past the pre-check.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Connection request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		First(&conn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

// GetBetweenUsers looks up the edge between two users in either direction.
// Returns (nil, nil) when no edge exists.
func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetByParticipant(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("id asc").
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) GetAcceptedByParticipant(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Order("id asc").
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// GetPendingForReceiver returns pending edges addressed to the receiver,
// with sender profiles preloaded, in insertion order.
func (r *connectionRepository) GetPendingForReceiver(ctx context.Context, receiverID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ? AND status = ?", receiverID, models.ConnectionStatusPending).
		Order("id asc").
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Connection", id)
	}
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Connection{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Connection", id)
	}
	return nil
}
