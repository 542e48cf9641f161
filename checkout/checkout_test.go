package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"tikiti/cart"
	"tikiti/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaserMock struct {
	mock       sync.Mutex
	Purchased  []entities.CreateTicket
	FailAfter  int // fail every request once this many succeeded; -1 never fails
	BlankUntil int // responses up to this count carry no confirmation code
}

func (p *purchaserMock) PurchaseTicket(ctx context.Context, ticket entities.CreateTicket) (entities.Ticket, error) {
	p.mock.Lock()
	defer p.mock.Unlock()

	if p.FailAfter >= 0 && len(p.Purchased) >= p.FailAfter {
		return entities.Ticket{}, errors.New("payment rejected")
	}

	p.Purchased = append(p.Purchased, ticket)
	code := fmt.Sprintf("CODE-%d", len(p.Purchased))
	if len(p.Purchased) <= p.BlankUntil {
		code = ""
	}
	return entities.Ticket{
		ID:               len(p.Purchased),
		EventID:          ticket.EventID,
		TicketType:       ticket.TicketType,
		ConfirmationCode: code,
		Status:           entities.StatusConfirmed,
	}, nil
}

func selectionOf(standard, vip, premium int) *cart.Selection {
	return cart.FromQuantities(map[entities.TicketType]int{
		entities.TicketStandard: standard,
		entities.TicketVIP:      vip,
		entities.TicketPremium:  premium,
	})
}

func TestPurchaseIssuesOneRequestPerUnit(t *testing.T) {
	purchaser := &purchaserMock{FailAfter: -1}
	sequencer := NewSequencer(purchaser)

	confirmation, err := sequencer.Purchase(context.Background(), Order{
		EventID:    5,
		Category:   "Concert",
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(2, 1, 1),
	})
	require.NoError(t, err)

	require.Len(t, purchaser.Purchased, 4)
	assert.Equal(t, 4, confirmation.TicketCount)
	assert.Equal(t, 2*2000+10000+5000, confirmation.Total)
	assert.Equal(t, "amina@example.com", confirmation.BuyerEmail)

	// Standard units go first, then VIP, then Premium.
	types := []entities.TicketType{}
	for _, p := range purchaser.Purchased {
		types = append(types, p.TicketType)
	}
	assert.Equal(t, []entities.TicketType{
		entities.TicketStandard, entities.TicketStandard,
		entities.TicketVIP, entities.TicketPremium,
	}, types)
}

func TestPurchaseSurfacesFirstConfirmationCode(t *testing.T) {
	purchaser := &purchaserMock{FailAfter: -1}
	sequencer := NewSequencer(purchaser)

	confirmation, err := sequencer.Purchase(context.Background(), Order{
		EventID:    5,
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(0, 2, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "CODE-1", confirmation.Code)
}

func TestPurchaseAbortsOnFirstFailure(t *testing.T) {
	purchaser := &purchaserMock{FailAfter: 2}
	sequencer := NewSequencer(purchaser)

	_, err := sequencer.Purchase(context.Background(), Order{
		EventID:    5,
		Category:   "Sports",
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(3, 2, 0),
	})
	require.Error(t, err)

	// Two requests succeeded, the third failed, nothing further was issued.
	assert.Len(t, purchaser.Purchased, 2)
}

func TestConfirmationCodeIsTheFirstResponses(t *testing.T) {
	// The first purchase in submission order owns the confirmation code,
	// verbatim, even when the upstream left it empty. Later codes are never
	// substituted.
	purchaser := &purchaserMock{FailAfter: -1, BlankUntil: 1}
	sequencer := NewSequencer(purchaser)

	confirmation, err := sequencer.Purchase(context.Background(), Order{
		EventID:    5,
		Category:   "Concert",
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(2, 0, 0),
	})
	require.NoError(t, err)
	assert.Len(t, purchaser.Purchased, 2)
	assert.Equal(t, "", confirmation.Code)
}

func TestPurchaseRejectsMissingBuyerFields(t *testing.T) {
	sequencer := NewSequencer(&purchaserMock{FailAfter: -1})

	_, err := sequencer.Purchase(context.Background(), Order{
		EventID:   5,
		BuyerName: "Amina",
		Selection: selectionOf(1, 0, 0),
	})
	assert.ErrorIs(t, err, ErrMissingBuyer)

	_, err = sequencer.Purchase(context.Background(), Order{
		EventID:    5,
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(1, 0, 0),
	})
	assert.ErrorIs(t, err, ErrMissingBuyer)
}

func TestPurchaseRejectsEmptyCart(t *testing.T) {
	purchaser := &purchaserMock{FailAfter: -1}
	sequencer := NewSequencer(purchaser)

	_, err := sequencer.Purchase(context.Background(), Order{
		EventID:    5,
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(0, 0, 0),
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, purchaser.Purchased)
}

func TestUnknownCategoryUsesDefaultPrices(t *testing.T) {
	purchaser := &purchaserMock{FailAfter: -1}
	sequencer := NewSequencer(purchaser)

	confirmation, err := sequencer.Purchase(context.Background(), Order{
		EventID:    9,
		Category:   "Mystery",
		BuyerName:  "Amina",
		BuyerEmail: "amina@example.com",
		Selection:  selectionOf(1, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1000+5000, confirmation.Total)
	assert.Equal(t, 1000, purchaser.Purchased[0].Price)
	assert.Equal(t, 5000, purchaser.Purchased[1].Price)
}
