package api

import (
	"context"
	"fmt"
	"net/http"
	"tikiti/entities"
)

func (c *Client) ListTickets(ctx context.Context) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	if err := c.do(ctx, "list_tickets", http.MethodGet, "/tickets", nil, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) GetTicket(ctx context.Context, id int) (entities.Ticket, error) {
	var ticket entities.Ticket
	err := c.do(ctx, "get_ticket", http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil, nil, &ticket)
	return ticket, err
}

func (c *Client) GetTicketByCode(ctx context.Context, code string) (entities.Ticket, error) {
	var ticket entities.Ticket
	err := c.do(ctx, "get_ticket_by_code", http.MethodGet, "/tickets/code/"+code, nil, nil, &ticket)
	return ticket, err
}

func (c *Client) ListEventTickets(ctx context.Context, eventID int) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	err := c.do(ctx, "list_event_tickets", http.MethodGet, fmt.Sprintf("/tickets/event/%d", eventID), nil, nil, &tickets)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) PurchaseTicket(ctx context.Context, ticket entities.CreateTicket) (entities.Ticket, error) {
	var purchased entities.Ticket
	err := c.do(ctx, "purchase_ticket", http.MethodPost, "/tickets", nil, ticket, &purchased)
	return purchased, err
}

// CancelTicket is a status transition on the external API, not a row removal.
func (c *Client) CancelTicket(ctx context.Context, id int) error {
	return c.do(ctx, "cancel_ticket", http.MethodDelete, fmt.Sprintf("/tickets/%d", id), nil, nil, nil)
}
