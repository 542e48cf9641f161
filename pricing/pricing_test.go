package pricing

import (
	"testing"
	"tikiti/entities"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownCategories(t *testing.T) {
	assert.Equal(t, Table{Standard: 500, Premium: 1500, VIP: 2500}, Resolve("Sports"))
	assert.Equal(t, Table{Standard: 2000, Premium: 5000, VIP: 10000}, Resolve("Concert"))
	assert.Equal(t, Table{Standard: 1500, Premium: 3000, VIP: 5000}, Resolve("Comedy"))
	assert.Equal(t, Table{Standard: 2500, Premium: 5000, VIP: 8000}, Resolve("Festival"))
}

func TestResolveUnknownCategoryFallsBackToDefault(t *testing.T) {
	defaults := Table{Standard: 1000, Premium: 3000, VIP: 5000}

	for _, category := range []string{"", "Opera", "sports", "Arts & Theatre", "Other"} {
		assert.Equal(t, defaults, Resolve(category), "category %q", category)
	}
}

func TestBasePriceIsStandardTier(t *testing.T) {
	assert.Equal(t, 500, BasePrice("Sports"))
	assert.Equal(t, 2000, BasePrice("Concert"))
	assert.Equal(t, 1000, BasePrice("Unknown"))
}

func TestTablePrice(t *testing.T) {
	table := Resolve("Comedy")

	assert.Equal(t, 1500, table.Price(entities.TicketStandard))
	assert.Equal(t, 3000, table.Price(entities.TicketPremium))
	assert.Equal(t, 5000, table.Price(entities.TicketVIP))
	assert.Equal(t, 0, table.Price(entities.TicketType("Backstage")))
}
