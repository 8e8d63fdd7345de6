package access

import (
	"context"
	"database/sql"
	"fmt"

	"lessonportal/internal/adapters/storage"
	"lessonportal/internal/domain/course"
	"lessonportal/internal/domain/enrollment"
	domain "lessonportal/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new access store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// programPattern is the LIKE pattern for the course-title scope rule.
func programPattern() string {
	return "%" + course.ProgramFilter + "%"
}

// CountStudentClassAccess counts qualifying enrollments for this student
// in this exact class batch.
// PRE: studentID > 0, classID > 0
// POST: Returns count >= 0
func (s *SQLiteStore) CountStudentClassAccess(ctx context.Context, studentID, classID int64) (int, error) {
	query := `SELECT COUNT(*)
		FROM enrollment e
		JOIN class_batch b ON b.id = e.class_id
		JOIN course c ON c.id = b.course_id
		WHERE e.student_id = ? AND e.class_id = ? AND e.status IN (?, ?) AND c.title LIKE ?`
	var count int
	err := s.db.QueryRowContext(ctx, query,
		studentID, classID, enrollment.StatusActive, enrollment.StatusCompleted, programPattern(),
	).Scan(&count)
	return count, err
}

// CountStudentProgramAccess counts qualifying enrollments for this
// student anywhere in the program.
// PRE: studentID > 0
// POST: Returns count >= 0
func (s *SQLiteStore) CountStudentProgramAccess(ctx context.Context, studentID int64) (int, error) {
	query := `SELECT COUNT(*)
		FROM enrollment e
		JOIN class_batch b ON b.id = e.class_id
		JOIN course c ON c.id = b.course_id
		WHERE e.student_id = ? AND e.status IN (?, ?) AND c.title LIKE ?`
	var count int
	err := s.db.QueryRowContext(ctx, query,
		studentID, enrollment.StatusActive, enrollment.StatusCompleted, programPattern(),
	).Scan(&count)
	return count, err
}

// CountInstructorClassAccess counts program class batches with this
// exact id taught by this instructor.
// PRE: classID > 0, instructorID > 0
// POST: Returns count >= 0
func (s *SQLiteStore) CountInstructorClassAccess(ctx context.Context, classID, instructorID int64) (int, error) {
	query := `SELECT COUNT(*)
		FROM class_batch b
		JOIN course c ON c.id = b.course_id
		WHERE b.id = ? AND b.instructor_id = ? AND c.title LIKE ?`
	var count int
	err := s.db.QueryRowContext(ctx, query, classID, instructorID, programPattern()).Scan(&count)
	return count, err
}

// CountInstructorProgramAccess counts program class batches taught by
// this instructor.
// PRE: instructorID > 0
// POST: Returns count >= 0
func (s *SQLiteStore) CountInstructorProgramAccess(ctx context.Context, instructorID int64) (int, error) {
	query := `SELECT COUNT(*)
		FROM class_batch b
		JOIN course c ON c.id = b.course_id
		WHERE b.instructor_id = ? AND c.title LIKE ?`
	var count int
	err := s.db.QueryRowContext(ctx, query, instructorID, programPattern()).Scan(&count)
	return count, err
}

// GetClassInstructor returns the display profile of the instructor
// assigned to a class batch.
// PRE: classID > 0
// POST: Returns the profile or an error if the class batch is unknown
func (s *SQLiteStore) GetClassInstructor(ctx context.Context, classID int64) (domain.Profile, error) {
	query := `SELECT u.first_name, u.last_name, u.email
		FROM class_batch b
		JOIN user u ON u.id = b.instructor_id
		WHERE b.id = ?`
	var p domain.Profile
	err := s.db.QueryRowContext(ctx, query, classID).Scan(&p.FirstName, &p.LastName, &p.Email)
	if err == sql.ErrNoRows {
		return domain.Profile{}, fmt.Errorf("class batch not found: %w", err)
	}
	return p, err
}
