package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"tikiti/entities"
)

func (c *Client) ListEvents(ctx context.Context, filters entities.EventFilters) ([]entities.EventWithVenue, error) {
	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.VenueID != 0 {
		query.Set("venue_id", strconv.Itoa(filters.VenueID))
	}

	var events []entities.EventWithVenue
	if err := c.do(ctx, "list_events", http.MethodGet, "/events", query, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int) (entities.EventWithVenue, error) {
	var event entities.EventWithVenue
	err := c.do(ctx, "get_event", http.MethodGet, fmt.Sprintf("/events/%d", id), nil, nil, &event)
	return event, err
}

func (c *Client) CreateEvent(ctx context.Context, event entities.CreateEvent) (entities.Event, error) {
	var created entities.Event
	err := c.do(ctx, "create_event", http.MethodPost, "/events", nil, event, &created)
	return created, err
}

func (c *Client) UpdateEvent(ctx context.Context, id int, event entities.UpdateEvent) (entities.Event, error) {
	var updated entities.Event
	err := c.do(ctx, "update_event", http.MethodPut, fmt.Sprintf("/events/%d", id), nil, event, &updated)
	return updated, err
}

func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	return c.do(ctx, "delete_event", http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil, nil)
}
