package identity

import (
	"context"

	"github.com/fleetcare/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email valueobject.Email) (*User, error)

	// ExistsByUsernameOrEmail checks whether either identifier is taken
	ExistsByUsernameOrEmail(ctx context.Context, username string, email valueobject.Email) (bool, error)

	// Save updates an existing user
	Save(ctx context.Context, user *User) error
}
