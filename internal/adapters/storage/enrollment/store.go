package enrollment

import (
	"context"

	domain "lessonportal/internal/domain/enrollment"
)

// Store persists Enrollment state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Enrollment, error)
	Save(ctx context.Context, value domain.Enrollment) (int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}
