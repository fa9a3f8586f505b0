package domain

import "time"

// TimeFilter selects the temporal window for event listings.
type TimeFilter string

const (
	// TimeFilterAll keeps every event that has not started yet.
	TimeFilterAll TimeFilter = "all"
	// TimeFilterHappeningSoon keeps events starting within the next 24h.
	TimeFilterHappeningSoon TimeFilter = "happening-soon"
	// TimeFilterMakeItInTime is identical to "all" at the query layer; the
	// caller applies the ETA predicate on the returned page.
	TimeFilterMakeItInTime TimeFilter = "make-it-in-time"
)

func (f TimeFilter) Valid() bool {
	switch f {
	case TimeFilterAll, TimeFilterHappeningSoon, TimeFilterMakeItInTime:
		return true
	}
	return false
}

type Event struct {
	ID           string     `json:"id"`
	UniversityID string     `json:"university_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	StartAt      time.Time  `json:"start"`
	EndAt        *time.Time `json:"end,omitempty"`
	Location     *string    `json:"location,omitempty"`
	CoordsLat    *float64   `json:"coords_lat,omitempty"`
	CoordsLng    *float64   `json:"coords_lng,omitempty"`
	Categories   []string   `json:"categories"`
	Image        *string    `json:"image,omitempty"`
	Popularity   int        `json:"popularity"`
	SourceIDs    []string   `json:"-"`
	DedupeKey    string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasCoords reports whether the event can be placed on the map and used as an
// ETA destination.
func (e *Event) HasCoords() bool {
	return e.CoordsLat != nil && e.CoordsLng != nil
}

// AnnotatedEvent is an event joined with the caller's registration status.
// Status is nil when the caller is anonymous or has no registration.
type AnnotatedEvent struct {
	Event
	RegistrationStatus *RegistrationStatus `json:"user_registration_status"`
}

// EventFilter is the repository-level listing filter. From is always set;
// Until is only set for the happening-soon window.
type EventFilter struct {
	UniversityID string
	Interests    []string
	From         time.Time
	Until        *time.Time
	Limit        int
	Offset       int
}

type CreateEventInput struct {
	UniversityID string
	Title        string
	Description  *string
	StartAt      time.Time
	EndAt        *time.Time
	Location     *string
	CoordsLat    *float64
	CoordsLng    *float64
	Categories   []string
	Image        *string
}

// ExtractedEvent is the LLM's reading of a free-text event announcement.
// Dates and times keep the wire format the organizer form submits.
type ExtractedEvent struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"start_date"`
	StartTime   string   `json:"start_time"`
	EndDate     string   `json:"end_date,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	Location    string   `json:"location,omitempty"`
	Categories  []string `json:"categories"`
	ImageURL    string   `json:"image_url,omitempty"`
}
