package store

import (
	"context"
	"fmt"

	"github.com/gemstore/analytics-manager/internal/entity"
)

type userStore struct {
	*MYSQLStore
}

// ListUsers returns accounts with the given role ordered by creation time.
func (ms *userStore) ListUsers(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
	users, err := QueryListNamed[entity.User](ctx, ms.DB(), `
	SELECT id, name, email, role, created_at
	FROM users
	WHERE role = :role
	ORDER BY created_at, id`, map[string]any{
		"role": role,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get users: %w", err)
	}
	return users, nil
}
