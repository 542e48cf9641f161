// Package checkout turns a cart selection into individual ticket purchases
// against the external ticketing API.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"tikiti/cart"
	"tikiti/entities"
	"tikiti/observability"
	"tikiti/pricing"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

var (
	ErrMissingBuyer = errors.New("buyer name and email are required")
	ErrEmptyCart    = errors.New("no tickets selected")
)

type TicketPurchaser interface {
	PurchaseTicket(ctx context.Context, ticket entities.CreateTicket) (entities.Ticket, error)
}

type Order struct {
	EventID    int
	Category   string
	BuyerName  string
	BuyerEmail string
	Selection  *cart.Selection
}

type Confirmation struct {
	// Code is the confirmation code of the first ticket purchased in
	// submission order. Codes of the remaining tickets in the same order are
	// not surfaced anywhere in the UI today.
	Code        string
	BuyerEmail  string
	TicketCount int
	Total       int
}

type Sequencer struct {
	purchaser TicketPurchaser
}

func NewSequencer(purchaser TicketPurchaser) Sequencer {
	if purchaser == nil {
		panic("ticket purchaser is nil")
	}
	return Sequencer{purchaser: purchaser}
}

// Purchase issues one ticket-purchase request per selected unit, strictly
// sequentially: a request is never sent before the previous response arrived.
// On the first failure the sequence stops; tickets already created stay
// confirmed on the external API side, no rollback is attempted.
func (s Sequencer) Purchase(ctx context.Context, order Order) (Confirmation, error) {
	if order.BuyerName == "" || order.BuyerEmail == "" {
		observability.Checkouts.WithLabelValues("rejected").Inc()
		return Confirmation{}, ErrMissingBuyer
	}
	if order.Selection == nil || order.Selection.TicketCount() == 0 {
		observability.Checkouts.WithLabelValues("rejected").Inc()
		return Confirmation{}, ErrEmptyCart
	}

	table := pricing.Resolve(order.Category)

	confirmation := Confirmation{
		BuyerEmail:  order.BuyerEmail,
		TicketCount: order.Selection.TicketCount(),
		Total:       order.Selection.Total(table),
	}

	purchased := 0
	for _, ticketType := range entities.TicketTypes {
		for i := 0; i < order.Selection.Quantity(ticketType); i++ {
			ticket, err := s.purchaser.PurchaseTicket(ctx, entities.CreateTicket{
				EventID:    order.EventID,
				BuyerName:  order.BuyerName,
				BuyerEmail: order.BuyerEmail,
				TicketType: ticketType,
				Price:      table.Price(ticketType),
			})
			if err != nil {
				log.FromContext(ctx).
					WithField("event_id", order.EventID).
					WithField("purchased", purchased).
					WithField("error", err.Error()).
					Error("checkout aborted")
				observability.Checkouts.WithLabelValues("failed").Inc()
				return Confirmation{}, fmt.Errorf("could not purchase %s ticket: %w", ticketType, err)
			}

			purchased++
			observability.TicketsPurchased.Inc()
			if purchased == 1 {
				confirmation.Code = ticket.ConfirmationCode
			}
		}
	}

	observability.Checkouts.WithLabelValues("succeeded").Inc()
	return confirmation, nil
}
