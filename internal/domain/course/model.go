package course

import (
	"errors"
	"strings"
)

// ProgramFilter is the course-title substring that scopes handout access.
// Any course whose title contains it qualifies, for every lesson week.
// This is a coarse, title-based rule kept from the original portal.
const ProgramFilter = "Microsoft Excel (Office 2019)"

// Domain errors
var (
	ErrEmptyTitle   = errors.New("course title cannot be empty")
	ErrNoInstructor = errors.New("class batch requires an instructor")
)

// Course is a catalog entry that class batches are scheduled from.
type Course struct {
	ID    int64
	Title string
}

// Validate checks if the Course has valid data.
// PRE: Course struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// InProgram reports whether this course grants handout access.
// INVARIANT: Course fields are not mutated
func (c *Course) InProgram() bool {
	return MatchesProgram(c.Title)
}

// MatchesProgram reports whether a course title falls under the program filter.
func MatchesProgram(title string) bool {
	return strings.Contains(title, ProgramFilter)
}

// ClassBatch is one scheduled, instructor-assigned offering of a course.
type ClassBatch struct {
	ID           int64
	CourseID     int64
	InstructorID int64
}

// Validate checks if the ClassBatch has valid data.
// PRE: ClassBatch struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (b *ClassBatch) Validate() error {
	if b.CourseID == 0 {
		return errors.New("class batch requires a course")
	}
	if b.InstructorID == 0 {
		return ErrNoInstructor
	}
	return nil
}
