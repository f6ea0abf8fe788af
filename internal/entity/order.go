package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord represents a customer_order row as fetched, before normalization.
// Amount, status and buyer reference are optional in the source data.
type OrderRecord struct {
	ID            string              `db:"id"`
	Placed        sql.NullTime        `db:"placed"`
	TotalPrice    decimal.NullDecimal `db:"total_price"`
	Status        sql.NullString      `db:"status"`
	PaymentStatus sql.NullString      `db:"payment_status"`
	BuyerID       sql.NullString      `db:"buyer_id"`
	Guest         *GuestContact       `db:"-"`
	Items         []OrderItem         `db:"-"`
}

// OrderItem represents the order_item table
type OrderItem struct {
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

// LineTotal returns quantity × unit price.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// Order is a normalized order: every optional field of OrderRecord is defaulted,
// so aggregation never re-checks for absence. A zero Placed means the source
// timestamp was missing.
type Order struct {
	ID            string
	Placed        time.Time
	TotalPrice    decimal.Decimal
	Status        OrderStatusName
	PaymentStatus PaymentStatusName
	CustomerID    string
	CustomerName  string
	Items         []OrderItem
}

// ItemsCount returns the total quantity across line items.
func (o *Order) ItemsCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// OrderStatusName is the custom type to enforce enum-like behavior
type OrderStatusName string

func (osn OrderStatusName) String() string {
	return string(osn)
}

const (
	Pending    OrderStatusName = "Pending"
	Processing OrderStatusName = "Processing"
	Shipped    OrderStatusName = "Shipped"
	Delivered  OrderStatusName = "Delivered"
	Cancelled  OrderStatusName = "Cancelled"
)

// ValidOrderStatusNames is a set of valid order status names
var ValidOrderStatusNames = map[OrderStatusName]bool{
	Pending:    true,
	Processing: true,
	Shipped:    true,
	Delivered:  true,
	Cancelled:  true,
}

// OrderStatusNames lists statuses in lifecycle order.
var OrderStatusNames = []OrderStatusName{Pending, Processing, Shipped, Delivered, Cancelled}

type PaymentStatusName string

const (
	PaymentUnpaid   PaymentStatusName = "unpaid"
	PaymentPaid     PaymentStatusName = "paid"
	PaymentRefunded PaymentStatusName = "refunded"
	PaymentFailed   PaymentStatusName = "failed"
)

// GuestLabel is the customer name used for orders without a resolvable buyer.
const GuestLabel = "Guest"
