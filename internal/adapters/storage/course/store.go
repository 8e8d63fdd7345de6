package course

import (
	"context"

	domain "lessonportal/internal/domain/course"
)

// Store persists Course and ClassBatch state.
type Store interface {
	GetCourse(ctx context.Context, id int64) (domain.Course, error)
	SaveCourse(ctx context.Context, value domain.Course) (int64, error)
	FindCourseByTitle(ctx context.Context, title string) (domain.Course, error)
	GetClassBatch(ctx context.Context, id int64) (domain.ClassBatch, error)
	SaveClassBatch(ctx context.Context, value domain.ClassBatch) (int64, error)
	ListClassBatches(ctx context.Context, courseID int64) ([]domain.ClassBatch, error)
}
