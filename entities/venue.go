package entities

type Venue struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Capacity  int     `json:"capacity"`
	ImageURL  *string `json:"image_url"`
	CreatedAt string  `json:"created_at"`
}

type VenueWithEvents struct {
	Venue
	Events []EventSummary `json:"events"`
}

// VenueInfo is the venue snippet embedded in event read models.
type VenueInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type CreateVenue struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

// UpdateVenue carries a partial update; nil fields are left untouched.
type UpdateVenue struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

type VenueFilters struct {
	Search string
	City   string
}
