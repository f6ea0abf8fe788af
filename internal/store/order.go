package store

import (
	"context"
	"fmt"

	"github.com/gemstore/analytics-manager/internal/entity"
	"golang.org/x/sync/errgroup"
)

type orderStore struct {
	*MYSQLStore
}

// ListOrders returns all orders with their line items and guest contacts.
// Items and contacts are fetched concurrently and joined in memory.
func (ms *orderStore) ListOrders(ctx context.Context) ([]entity.OrderRecord, error) {
	orders, err := QueryListNamed[entity.OrderRecord](ctx, ms.DB(), `
	SELECT id, placed, total_price, status, payment_status, buyer_id
	FROM customer_order
	ORDER BY placed, id`, nil)
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	if len(orders) == 0 {
		return []entity.OrderRecord{}, nil
	}

	var (
		items  []entity.OrderItem
		guests []entity.GuestContact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = QueryListNamed[entity.OrderItem](gctx, ms.DB(), `
		SELECT order_id, product_id, quantity, unit_price
		FROM order_item
		ORDER BY order_id, id`, nil)
		if err != nil {
			return fmt.Errorf("can't get order items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		guests, err = QueryListNamed[entity.GuestContact](gctx, ms.DB(), `
		SELECT order_id, name, email, phone
		FROM guest_contact`, nil)
		if err != nil {
			return fmt.Errorf("can't get guest contacts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return joinOrders(orders, items, guests), nil
}

// joinOrders attaches items and guest contacts to their orders. Rows that
// reference unknown orders are ignored.
func joinOrders(orders []entity.OrderRecord, items []entity.OrderItem, guests []entity.GuestContact) []entity.OrderRecord {
	idx := make(map[string]int, len(orders))
	for i, o := range orders {
		idx[o.ID] = i
	}
	for _, it := range items {
		if i, ok := idx[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	for i := range guests {
		if j, ok := idx[guests[i].OrderID]; ok {
			orders[j].Guest = &guests[i]
		}
	}
	return orders
}
