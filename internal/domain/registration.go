package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusGoing      RegistrationStatus = "going"
	RegistrationStatusInterested RegistrationStatus = "interested"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusGoing, RegistrationStatusInterested, RegistrationStatusCancelled:
		return true
	}
	return false
}

// Registration binds one user to one event. The (user, event) pair is unique;
// repeated register calls mutate the status in place, the record is never
// duplicated or deleted.
type Registration struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	EventID      string             `json:"event_id"`
	Status       RegistrationStatus `json:"status"`
	CustomFields map[string]any     `json:"custom_fields,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	RemindedAt   *time.Time         `json:"-"`
}

// RegistrationWithEvent is a registration joined with its event, as returned
// by the "my events" listing.
type RegistrationWithEvent struct {
	Registration
	Event Event `json:"event"`
}

// Reminder is one pending "event starting soon" notification.
type Reminder struct {
	RegistrationID string
	User           User
	Event          Event
}
