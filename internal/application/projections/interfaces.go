package projections

import (
	"context"

	domainUser "lessonportal/internal/domain/user"
)

// AccessStore is the narrow interface the access projections need.
type AccessStore interface {
	CountStudentClassAccess(ctx context.Context, studentID, classID int64) (int, error)
	CountStudentProgramAccess(ctx context.Context, studentID int64) (int, error)
	CountInstructorClassAccess(ctx context.Context, classID, instructorID int64) (int, error)
	CountInstructorProgramAccess(ctx context.Context, instructorID int64) (int, error)
	GetClassInstructor(ctx context.Context, classID int64) (domainUser.Profile, error)
}

// UserStore is the narrow interface the identity projection needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (domainUser.User, error)
}
