package models

import (
	"time"
)

// ConnectionStatus represents the status of a connection request.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a request the receiver has not acted on.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusAccepted indicates an established connection.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// Connection is a directed sender→receiver edge between two users. The
// direction records who asked whom; once accepted the edge is treated
// symmetrically for every derivation. The (sender_id, receiver_id) pair is
// unique at the store so concurrent duplicate requests cannot create two rows.
type Connection struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	SenderID   uint             `gorm:"not null;uniqueIndex:idx_sender_receiver" json:"sender_id"`
	ReceiverID uint             `gorm:"not null;uniqueIndex:idx_sender_receiver" json:"receiver_id"`
	Status     ConnectionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (Connection) TableName() string {
	return "connections"
}

// OtherParticipant returns the participant that is not userID. For an edge
// not touching userID at all it returns the sender, so callers must only use
// it on edges known to involve userID.
func (c *Connection) OtherParticipant(userID uint) uint {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}

// Invitation is a pending connection enriched with the sender's profile
// projection, as returned by the invitations endpoint.
type Invitation struct {
	ID        uint        `json:"id"`
	Sender    UserSummary `json:"sender"`
	CreatedAt time.Time   `json:"created_at"`
}
