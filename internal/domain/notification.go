package domain

import "github.com/google/uuid"

// Notification is a best-effort message to one recipient. The workflow
// decides what to send; channel adapters decide how.
type Notification struct {
	RecipientID uuid.UUID
	Title       string
	Message     string
	Priority    NotificationPriority
}
