package catalog

import (
	"testing"
	"tikiti/entities"

	"github.com/stretchr/testify/assert"
)

func eventOf(title, category, date string) entities.EventWithVenue {
	return entities.EventWithVenue{Event: entities.Event{Title: title, Category: category, EventDate: date}}
}

func titles(events []entities.EventWithVenue) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func TestFilterByCategoriesUsesSetMembership(t *testing.T) {
	events := []entities.EventWithVenue{
		eventOf("a", "Concert", "2025-01-01"),
		eventOf("b", "Sports", "2025-01-02"),
		eventOf("c", "Comedy", "2025-01-03"),
	}

	assert.Equal(t, []string{"a", "c"},
		titles(FilterByCategories(events, []string{"Concert", "Comedy"})))

	// Empty set shows everything.
	assert.Equal(t, []string{"a", "b", "c"}, titles(FilterByCategories(events, nil)))

	// No matches is an empty list, not nil input passthrough.
	assert.Empty(t, FilterByCategories(events, []string{"Festival"}))
}

func TestSortByPriceHighIsStableOnTies(t *testing.T) {
	events := []entities.EventWithVenue{
		eventOf("first concert", "Concert", "2025-06-01"),
		eventOf("the match", "Sports", "2025-05-01"),
		eventOf("second concert", "Concert", "2025-04-01"),
	}

	sorted := SortEvents(events, SortByPriceHigh)
	assert.Equal(t, []string{"first concert", "second concert", "the match"}, titles(sorted))

	// Input order untouched.
	assert.Equal(t, "first concert", events[0].Title)
}

func TestSortByPriceLow(t *testing.T) {
	events := []entities.EventWithVenue{
		eventOf("fest", "Festival", "2025-01-01"), // base 2500
		eventOf("game", "Sports", "2025-01-02"),   // base 500
		eventOf("gig", "Concert", "2025-01-03"),   // base 2000
	}

	sorted := SortEvents(events, SortByPriceLow)
	assert.Equal(t, []string{"game", "gig", "fest"}, titles(sorted))
}

func TestSortByDateAscending(t *testing.T) {
	events := []entities.EventWithVenue{
		eventOf("late", "Concert", "2025-12-01"),
		eventOf("early", "Sports", "2025-02-10"),
		eventOf("mid", "Comedy", "2025-07-04"),
	}

	sorted := SortEvents(events, SortByDate)
	assert.Equal(t, []string{"early", "mid", "late"}, titles(sorted))
}

func TestUnknownSortModeKeepsOrder(t *testing.T) {
	events := []entities.EventWithVenue{
		eventOf("b", "Concert", "2025-12-01"),
		eventOf("a", "Sports", "2025-02-10"),
	}

	sorted := SortEvents(events, SortMode("alphabetical"))
	assert.Equal(t, []string{"b", "a"}, titles(sorted))
}
