package report

import (
	"github.com/gemstore/analytics-manager/internal/entity"
)

// Partitioned holds the subsets of the fetched data that fall into the current
// and comparison windows of a period.
type Partitioned struct {
	CurrentOrders  []entity.Order
	PreviousOrders []entity.Order
	CurrentUsers   []entity.User
	PreviousUsers  []entity.User
}

// Partition splits orders by placement time and customer accounts by creation
// time into the windows of p. Records without a timestamp are left out of
// both windows, as are users that are not customers. Input order is kept.
func Partition(p entity.Period, orders []entity.Order, users []entity.User) Partitioned {
	var out Partitioned
	for _, o := range orders {
		if o.Placed.IsZero() {
			continue
		}
		switch {
		case p.Current.Contains(o.Placed):
			out.CurrentOrders = append(out.CurrentOrders, o)
		case p.Previous.Contains(o.Placed):
			out.PreviousOrders = append(out.PreviousOrders, o)
		}
	}
	for _, u := range users {
		if u.Role != entity.RoleCustomer || !u.Created.Valid || u.Created.Time.IsZero() {
			continue
		}
		switch {
		case p.Current.Contains(u.Created.Time):
			out.CurrentUsers = append(out.CurrentUsers, u)
		case p.Previous.Contains(u.Created.Time):
			out.PreviousUsers = append(out.PreviousUsers, u)
		}
	}
	return out
}
