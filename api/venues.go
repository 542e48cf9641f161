package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"tikiti/entities"
)

func (c *Client) ListVenues(ctx context.Context, filters entities.VenueFilters) ([]entities.Venue, error) {
	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.City != "" {
		query.Set("city", filters.City)
	}

	var venues []entities.Venue
	if err := c.do(ctx, "list_venues", http.MethodGet, "/venues", query, nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) GetVenue(ctx context.Context, id int) (entities.VenueWithEvents, error) {
	var venue entities.VenueWithEvents
	err := c.do(ctx, "get_venue", http.MethodGet, fmt.Sprintf("/venues/%d", id), nil, nil, &venue)
	return venue, err
}

func (c *Client) CreateVenue(ctx context.Context, venue entities.CreateVenue) (entities.Venue, error) {
	var created entities.Venue
	err := c.do(ctx, "create_venue", http.MethodPost, "/venues", nil, venue, &created)
	return created, err
}

func (c *Client) UpdateVenue(ctx context.Context, id int, venue entities.UpdateVenue) (entities.Venue, error) {
	var updated entities.Venue
	err := c.do(ctx, "update_venue", http.MethodPut, fmt.Sprintf("/venues/%d", id), nil, venue, &updated)
	return updated, err
}

func (c *Client) DeleteVenue(ctx context.Context, id int) error {
	return c.do(ctx, "delete_venue", http.MethodDelete, fmt.Sprintf("/venues/%d", id), nil, nil, nil)
}
