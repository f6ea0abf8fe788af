package store

import (
	"context"
	"testing"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, BulkInsert(ctx, db.DB(), "users", []map[string]any{
		{"id": "u1", "name": "Jane", "email": "jane@example.com", "role": "customer", "created_at": created},
		{"id": "u2", "name": "Staff", "email": "staff@example.com", "role": "staff", "created_at": created},
		{"id": "u3", "name": "Legacy", "email": "legacy@example.com", "role": "customer", "created_at": nil},
	}))

	users, err := db.Users().ListUsers(ctx, entity.RoleCustomer)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// NULL creation times sort first
	assert.Equal(t, "u3", users[0].ID)
	assert.False(t, users[0].Created.Valid)
	assert.Equal(t, "u1", users[1].ID)
	assert.Equal(t, entity.RoleCustomer, users[1].Role)
	assert.True(t, users[1].Created.Time.Equal(created))
}
