package report

import (
	"database/sql"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(productID string, qty int, price string) entity.OrderItem {
	return entity.OrderItem{ProductID: productID, Quantity: qty, UnitPrice: dec(price)}
}

func order(id, placed, total string, st entity.OrderStatusName, items ...entity.OrderItem) entity.Order {
	o := entity.Order{
		ID:            id,
		TotalPrice:    dec(total),
		Status:        st,
		PaymentStatus: entity.PaymentPaid,
		CustomerName:  entity.GuestLabel,
		Items:         items,
	}
	if placed != "" {
		o.Placed = at(placed)
	}
	return o
}

func customer(id, created string) entity.User {
	u := entity.User{ID: id, Name: "user " + id, Role: entity.RoleCustomer}
	if created != "" {
		u.Created = sql.NullTime{Time: at(created), Valid: true}
	}
	return u
}

func record(id, placed, total, status string, items ...entity.OrderItem) entity.OrderRecord {
	r := entity.OrderRecord{ID: id, Items: items}
	if placed != "" {
		r.Placed = sql.NullTime{Time: at(placed), Valid: true}
	}
	if total != "" {
		r.TotalPrice = decimal.NewNullDecimal(dec(total))
	}
	if status != "" {
		r.Status = sql.NullString{String: status, Valid: true}
	}
	return r
}
