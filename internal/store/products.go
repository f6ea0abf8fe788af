package store

import (
	"context"
	"fmt"

	"github.com/gemstore/analytics-manager/internal/entity"
)

type productStore struct {
	*MYSQLStore
}

// ListProducts returns the whole catalog.
func (ms *productStore) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), `
	SELECT id, title, price, category, material
	FROM product
	ORDER BY id`, nil)
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return products, nil
}
