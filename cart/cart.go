// Package cart holds the per-event ticket selection. A selection is scoped
// to one (session, event) pair and never outlives a successful checkout.
package cart

import (
	"tikiti/entities"
	"tikiti/pricing"
)

type Selection struct {
	quantities map[entities.TicketType]int
}

func NewSelection() *Selection {
	return &Selection{quantities: map[entities.TicketType]int{}}
}

// FromQuantities rebuilds a selection from stored per-tier counts, clamping
// anything negative to zero.
func FromQuantities(quantities map[entities.TicketType]int) *Selection {
	s := NewSelection()
	for _, ticketType := range entities.TicketTypes {
		if q := quantities[ticketType]; q > 0 {
			s.quantities[ticketType] = q
		}
	}
	return s
}

func (s *Selection) Increment(ticketType entities.TicketType) {
	s.quantities[ticketType]++
}

// Decrement floors at zero.
func (s *Selection) Decrement(ticketType entities.TicketType) {
	if s.quantities[ticketType] > 0 {
		s.quantities[ticketType]--
	}
}

func (s *Selection) Quantity(ticketType entities.TicketType) int {
	return s.quantities[ticketType]
}

func (s *Selection) TicketCount() int {
	count := 0
	for _, q := range s.quantities {
		count += q
	}
	return count
}

func (s *Selection) Total(table pricing.Table) int {
	total := 0
	for ticketType, q := range s.quantities {
		total += q * table.Price(ticketType)
	}
	return total
}

func (s *Selection) Quantities() map[entities.TicketType]int {
	quantities := make(map[entities.TicketType]int, len(entities.TicketTypes))
	for _, ticketType := range entities.TicketTypes {
		quantities[ticketType] = s.quantities[ticketType]
	}
	return quantities
}

func (s *Selection) Reset() {
	s.quantities = map[entities.TicketType]int{}
}
