package entities

import "github.com/shopspring/decimal"

type TicketType string

const (
	TicketStandard TicketType = "Standard"
	TicketVIP      TicketType = "VIP"
	TicketPremium  TicketType = "Premium"
)

// TicketTypes lists the tiers in display and checkout submission order.
var TicketTypes = []TicketType{TicketStandard, TicketVIP, TicketPremium}

type TicketStatus string

const (
	StatusConfirmed TicketStatus = "confirmed"
	StatusUsed      TicketStatus = "used"
	StatusCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID               int             `json:"id"`
	EventID          int             `json:"event_id"`
	BuyerName        string          `json:"buyer_name"`
	BuyerEmail       string          `json:"buyer_email"`
	TicketType       TicketType      `json:"ticket_type"`
	Price            decimal.Decimal `json:"price"`
	ConfirmationCode string          `json:"confirmation_code"`
	PurchaseDate     string          `json:"purchase_date"`
	Status           TicketStatus    `json:"status"`
}

type CreateTicket struct {
	EventID    int        `json:"event_id"`
	BuyerName  string     `json:"buyer_name"`
	BuyerEmail string     `json:"buyer_email"`
	TicketType TicketType `json:"ticket_type"`
	Price      int        `json:"price"`
}
