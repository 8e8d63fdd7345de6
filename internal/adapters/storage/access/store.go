package access

import (
	"context"

	domain "lessonportal/internal/domain/user"
)

// Store exposes the closed set of access-count query intents that gate
// handout pages, plus the instructor lookup for a class batch. Every
// count is scoped by the program's course-title filter; the two
// class-scoped intents additionally pin an exact class batch.
type Store interface {
	// CountStudentClassAccess counts qualifying enrollments for this
	// student in this exact class batch.
	CountStudentClassAccess(ctx context.Context, studentID, classID int64) (int, error)

	// CountStudentProgramAccess counts qualifying enrollments for this
	// student in any class batch of the program.
	CountStudentProgramAccess(ctx context.Context, studentID int64) (int, error)

	// CountInstructorClassAccess counts program class batches with this
	// exact id taught by this instructor.
	CountInstructorClassAccess(ctx context.Context, classID, instructorID int64) (int, error)

	// CountInstructorProgramAccess counts program class batches taught
	// by this instructor.
	CountInstructorProgramAccess(ctx context.Context, instructorID int64) (int, error)

	// GetClassInstructor returns the display profile of the instructor
	// assigned to a class batch.
	GetClassInstructor(ctx context.Context, classID int64) (domain.Profile, error)
}
