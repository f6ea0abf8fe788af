package report

import (
	"strings"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// NormalizeOrders converts fetched order records into orders with every
// optional field defaulted. Buyer names are looked up in users.
func NormalizeOrders(records []entity.OrderRecord, users []entity.User) []entity.Order {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	orders := make([]entity.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, normalizeOrder(r, names))
	}
	return orders
}

func normalizeOrder(r entity.OrderRecord, names map[string]string) entity.Order {
	o := entity.Order{
		ID:            r.ID,
		TotalPrice:    decimal.Zero,
		Status:        normalizeStatus(r.Status.String),
		PaymentStatus: normalizePaymentStatus(r.PaymentStatus.String),
		Items:         append([]entity.OrderItem(nil), r.Items...),
	}
	if r.Placed.Valid {
		o.Placed = r.Placed.Time
	}
	if r.TotalPrice.Valid {
		o.TotalPrice = r.TotalPrice.Decimal
	}
	if r.BuyerID.Valid {
		o.CustomerID = strings.TrimSpace(r.BuyerID.String)
	}
	o.CustomerName = customerName(o.CustomerID, r.Guest, names)
	return o
}

// customerName prefers the account name, then the guest contact name.
func customerName(id string, guest *entity.GuestContact, names map[string]string) string {
	if id != "" {
		if n := strings.TrimSpace(names[id]); n != "" {
			return n
		}
	}
	if guest != nil {
		if n := strings.TrimSpace(guest.Name); n != "" {
			return n
		}
	}
	return entity.GuestLabel
}

func normalizeStatus(s string) entity.OrderStatusName {
	s = strings.TrimSpace(s)
	for _, st := range entity.OrderStatusNames {
		if strings.EqualFold(s, st.String()) {
			return st
		}
	}
	return entity.Pending
}

var paymentStatuses = []entity.PaymentStatusName{
	entity.PaymentUnpaid,
	entity.PaymentPaid,
	entity.PaymentRefunded,
	entity.PaymentFailed,
}

func normalizePaymentStatus(s string) entity.PaymentStatusName {
	s = strings.TrimSpace(s)
	for _, ps := range paymentStatuses {
		if strings.EqualFold(s, string(ps)) {
			return ps
		}
	}
	return entity.PaymentUnpaid
}
