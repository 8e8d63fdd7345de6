package user

import (
	"context"

	domain "lessonportal/internal/domain/user"
)

// Store persists User state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Save(ctx context.Context, value domain.User) (int64, error)
	Count(ctx context.Context) (int, error)
}
