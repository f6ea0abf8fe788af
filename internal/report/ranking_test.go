package report

import (
	"testing"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() entity.Catalog {
	return entity.NewCatalog([]entity.Product{
		{ID: "p1", Title: "Ring", Price: dec("100")},
		{ID: "p2", Title: "Necklace", Price: dec("250")},
		{ID: "p3", Title: "Bracelet", Price: dec("80")},
		{ID: "p4", Title: "Earrings", Price: dec("60")},
		{ID: "p5", Title: "Brooch", Price: dec("40")},
		{ID: "p6", Title: "Pendant", Price: dec("30")},
	})
}

func TestTopProducts(t *testing.T) {
	orders := []entity.Order{
		order("1", "2024-03-01 10:00", "0", entity.Delivered,
			item("p1", 2, "100"), item("p2", 1, "250"), item("ghost", 3, "10")),
		order("2", "2024-03-02 10:00", "0", entity.Delivered,
			item("p3", 1, "80"), item("p4", 1, "60"), item("p5", 1, "40"), item("p6", 1, "30")),
		order("3", "2024-03-03 10:00", "0", entity.Delivered, item("p1", 1, "100")),
	}

	top, unresolved := TopProducts(orders, testCatalog(), 5)
	require.Len(t, top, 5)
	assert.Equal(t, 1, unresolved)

	assert.Equal(t, "p1", top[0].ProductID)
	assert.Equal(t, "Ring", top[0].Title)
	assert.Equal(t, "300", top[0].Revenue.String())
	assert.Equal(t, 3, top[0].UnitsSold)
	assert.Equal(t, "p2", top[1].ProductID)
	assert.Equal(t, "p5", top[4].ProductID)

	for i := 1; i < len(top); i++ {
		assert.False(t, top[i].Revenue.GreaterThan(top[i-1].Revenue))
	}
}

func TestTopProductsTiesKeepFirstSeen(t *testing.T) {
	orders := []entity.Order{
		order("1", "2024-03-01 10:00", "0", entity.Delivered, item("p4", 1, "50"), item("p3", 1, "50")),
		order("2", "2024-03-01 11:00", "0", entity.Delivered, item("p1", 1, "50")),
	}

	top, _ := TopProducts(orders, testCatalog(), 0)
	require.Len(t, top, 3)
	assert.Equal(t, "p4", top[0].ProductID)
	assert.Equal(t, "p3", top[1].ProductID)
	assert.Equal(t, "p1", top[2].ProductID)
}

func TestTopProductsEmpty(t *testing.T) {
	top, unresolved := TopProducts(nil, testCatalog(), 5)
	assert.Empty(t, top)
	assert.NotNil(t, top)
	assert.Zero(t, unresolved)
}
