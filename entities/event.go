package entities

type Event struct {
	ID          int     `json:"id"`
	VenueID     int     `json:"venue_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	EventDate   string  `json:"event_date"`
	EventTime   string  `json:"event_time"`
	ImageURL    *string `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
}

// EventWithVenue is the read model returned by event listing and detail
// fetches.
type EventWithVenue struct {
	Event
	Venue VenueInfo `json:"venue"`
}

// EventSummary is the trimmed event embedded in venue detail responses.
type EventSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	EventDate string `json:"event_date"`
	Category  string `json:"category"`
}

type CreateEvent struct {
	VenueID     int    `json:"venue_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	ImageURL    string `json:"image_url,omitempty"`
}

// UpdateEvent carries a partial update; nil fields are left untouched.
type UpdateEvent struct {
	VenueID     *int    `json:"venue_id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	EventDate   *string `json:"event_date,omitempty"`
	EventTime   *string `json:"event_time,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type EventFilters struct {
	Search   string
	Category string
	VenueID  int
}
