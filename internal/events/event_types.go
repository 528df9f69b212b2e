package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventUserProfileUpdated EventType = "user_profile_updated"
	EventUserDeleted        EventType = "user_deleted"
)

// Event represents an account event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserProfileUpdatedPayload payload.
type UserProfileUpdatedPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	Email string `json:"email"`
}
