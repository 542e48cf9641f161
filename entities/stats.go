package entities

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate view returned by GET /stats/dashboard.
type DashboardStats struct {
	TotalVenues      int             `json:"total_venues"`
	TotalEvents      int             `json:"total_events"`
	TotalTickets     int             `json:"total_tickets"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	ConfirmedTickets int             `json:"confirmed_tickets"`
	CancelledTickets int             `json:"cancelled_tickets"`
	RecentTickets    []RecentTicket  `json:"recent_tickets"`
	UpcomingEvents   []UpcomingEvent `json:"upcoming_events"`
}

type RecentTicket struct {
	ID               int             `json:"id"`
	ConfirmationCode string          `json:"confirmation_code"`
	BuyerName        string          `json:"buyer_name"`
	BuyerEmail       string          `json:"buyer_email"`
	EventID          int             `json:"event_id"`
	TicketType       TicketType      `json:"ticket_type"`
	Price            decimal.Decimal `json:"price"`
	Status           TicketStatus    `json:"status"`
	PurchaseDate     string          `json:"purchase_date"`
}

type UpcomingEvent struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	EventDate string `json:"event_date"`
	EventTime string `json:"event_time"`
	Category  string `json:"category"`
	VenueID   int    `json:"venue_id"`
}
