package repository

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
)

// UserSummary is the projection returned by role-scoped user listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetWithRole loads the user together with its role and permission set.
	GetWithRole(ctx context.Context, id uint) (*entity.User, error)
	ListByRoleName(ctx context.Context, roleName string) ([]UserSummary, error)
}

// RoleRepository defines the interface for role data operations
type RoleRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	// UpsertByName creates the role or, when a role of that name already
	// exists, replaces its permission set. Name is the dedup key.
	UpsertByName(ctx context.Context, role *entity.Role) error
}
