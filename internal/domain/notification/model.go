package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeUrgent  = "urgent"
	TypeSuccess = "success"
)

// Notification is an in-app message for lab staff. A nil UserID addresses
// every user.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

func ValidType(t string) bool {
	switch t {
	case TypeInfo, TypeWarning, TypeUrgent, TypeSuccess:
		return true
	}
	return false
}
