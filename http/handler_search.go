package http

import (
	"context"
	"net/http"
	"tikiti/entities"

	"github.com/labstack/echo/v4"
)

// Live search: the browser reports every filter change, the per-session
// loader debounces upstream fetches and keeps only the latest query's result.

type eventSearchRequest struct {
	Search   *string `json:"search,omitempty"`
	Category *string `json:"category,omitempty"`
	VenueID  *int    `json:"venue_id,omitempty"`
}

type venueSearchRequest struct {
	Search *string `json:"search,omitempty"`
	City   *string `json:"city,omitempty"`
}

func (h Handler) PutEventSearch(c echo.Context) error {
	var request eventSearchRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	loader := h.searches.EventLoaderFor(h.sessionID(c))
	// The fetch fires after this request has completed, so it must outlive
	// the request context.
	ctx := context.WithoutCancel(c.Request().Context())

	if request.Search != nil {
		loader.SetSearch(ctx, *request.Search)
	}
	if request.Category != nil {
		loader.SetCategory(ctx, *request.Category)
	}
	if request.VenueID != nil {
		loader.SetVenue(ctx, *request.VenueID)
	}
	return c.NoContent(http.StatusAccepted)
}

type eventSearchView struct {
	Search   string                    `json:"search"`
	Category string                    `json:"category,omitempty"`
	VenueID  int                       `json:"venue_id,omitempty"`
	Events   []entities.EventWithVenue `json:"events"`
	Count    int                       `json:"count"`
}

func (h Handler) GetEventSearch(c echo.Context) error {
	loader := h.searches.EventLoaderFor(h.sessionID(c))
	filters := loader.Filters()
	events := loader.Events()

	return c.JSON(http.StatusOK, eventSearchView{
		Search:   filters.Search,
		Category: filters.Category,
		VenueID:  filters.VenueID,
		Events:   events,
		Count:    len(events),
	})
}

func (h Handler) PutVenueSearch(c echo.Context) error {
	var request venueSearchRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	loader := h.searches.VenueLoaderFor(h.sessionID(c))
	ctx := context.WithoutCancel(c.Request().Context())

	if request.Search != nil {
		loader.SetSearch(ctx, *request.Search)
	}
	if request.City != nil {
		loader.SetCity(ctx, *request.City)
	}
	return c.NoContent(http.StatusAccepted)
}

type venueSearchView struct {
	Search string           `json:"search"`
	City   string           `json:"city,omitempty"`
	Venues []entities.Venue `json:"venues"`
	Count  int              `json:"count"`
}

func (h Handler) GetVenueSearch(c echo.Context) error {
	loader := h.searches.VenueLoaderFor(h.sessionID(c))
	filters := loader.Filters()
	venues := loader.Venues()

	return c.JSON(http.StatusOK, venueSearchView{
		Search: filters.Search,
		City:   filters.City,
		Venues: venues,
		Count:  len(venues),
	})
}
