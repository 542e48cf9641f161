package catalog

import (
	"sort"
	"tikiti/entities"
	"tikiti/pricing"
)

type SortMode string

const (
	SortByDate      SortMode = "date"
	SortByPriceLow  SortMode = "price-low"
	SortByPriceHigh SortMode = "price-high"
)

// FilterByCategories keeps events whose category is in the selected set. An
// empty set selects everything.
func FilterByCategories(events []entities.EventWithVenue, categories []string) []entities.EventWithVenue {
	if len(categories) == 0 {
		return events
	}

	selected := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		selected[c] = struct{}{}
	}

	filtered := make([]entities.EventWithVenue, 0, len(events))
	for _, event := range events {
		if _, ok := selected[event.Category]; ok {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// SortEvents returns a sorted copy; ties keep their original relative order.
// Dates are ISO yyyy-mm-dd strings, so date order is string order.
func SortEvents(events []entities.EventWithVenue, mode SortMode) []entities.EventWithVenue {
	sorted := make([]entities.EventWithVenue, len(events))
	copy(sorted, events)

	switch mode {
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EventDate < sorted[j].EventDate
		})
	case SortByPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return pricing.BasePrice(sorted[i].Category) < pricing.BasePrice(sorted[j].Category)
		})
	case SortByPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return pricing.BasePrice(sorted[i].Category) > pricing.BasePrice(sorted[j].Category)
		})
	}
	return sorted
}
