package entity

import "database/sql"

// GuestContact represents the guest_contact table: contact details left by
// buyers who checked out without an account.
type GuestContact struct {
	OrderID string         `db:"order_id"`
	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Phone   sql.NullString `db:"phone"`
}

// UserRole distinguishes customers from staff accounts.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleAdmin    UserRole = "admin"
)

// User represents the users table
type User struct {
	ID      string       `db:"id"`
	Name    string       `db:"name"`
	Email   string       `db:"email"`
	Role    UserRole     `db:"role"`
	Created sql.NullTime `db:"created_at"`
}
