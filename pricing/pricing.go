// Package pricing maps event categories to their fixed ticket tier prices.
// Prices are unit prices in KES; the external API stores whatever the buyer
// actually paid, this table only drives the storefront.
package pricing

import "tikiti/entities"

type Table struct {
	Standard int `json:"Standard"`
	Premium  int `json:"Premium"`
	VIP      int `json:"VIP"`
}

var categoryTables = map[string]Table{
	"Sports":   {Standard: 500, Premium: 1500, VIP: 2500},
	"Concert":  {Standard: 2000, Premium: 5000, VIP: 10000},
	"Comedy":   {Standard: 1500, Premium: 3000, VIP: 5000},
	"Festival": {Standard: 2500, Premium: 5000, VIP: 8000},
}

var defaultTable = Table{Standard: 1000, Premium: 3000, VIP: 5000}

// Resolve returns the price table for a category. Unknown categories
// (including the empty string) get the default table rather than an error.
func Resolve(category string) Table {
	if table, ok := categoryTables[category]; ok {
		return table
	}
	return defaultTable
}

// BasePrice is the cheapest tier for a category, used for "from KES" badges
// and price sorting on the events listing.
func BasePrice(category string) int {
	return Resolve(category).Standard
}

func (t Table) Price(ticketType entities.TicketType) int {
	switch ticketType {
	case entities.TicketStandard:
		return t.Standard
	case entities.TicketPremium:
		return t.Premium
	case entities.TicketVIP:
		return t.VIP
	}
	return 0
}
