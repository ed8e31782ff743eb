package repository

import (
	"context"

	"github.com/crediya/auth-service/internal/domain/entity"
)

// UserRepository is the outbound port for user persistence.
type UserRepository interface {
	// ExistsByEmail reports whether any persisted user has the given email.
	// A missing email is not an error: it returns (false, nil).
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save inserts a new user and returns the persisted entity with the
	// generated identifier populated. Only insert-new is supported.
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
}
