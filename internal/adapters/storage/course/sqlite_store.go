package course

import (
	"context"
	"database/sql"
	"fmt"

	"lessonportal/internal/adapters/storage"
	domain "lessonportal/internal/domain/course"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new course store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetCourse retrieves a Course by its ID.
// PRE: id > 0
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetCourse(ctx context.Context, id int64) (domain.Course, error) {
	var entity domain.Course
	err := s.db.QueryRowContext(ctx, "SELECT id, title FROM course WHERE id = ?", id).
		Scan(&entity.ID, &entity.Title)
	if err == sql.ErrNoRows {
		return domain.Course{}, fmt.Errorf("course not found: %w", err)
	}
	return entity, err
}

// FindCourseByTitle retrieves a Course by exact title.
// PRE: title is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) FindCourseByTitle(ctx context.Context, title string) (domain.Course, error) {
	var entity domain.Course
	err := s.db.QueryRowContext(ctx, "SELECT id, title FROM course WHERE title = ?", title).
		Scan(&entity.ID, &entity.Title)
	if err == sql.ErrNoRows {
		return domain.Course{}, fmt.Errorf("course not found: %w", err)
	}
	return entity, err
}

// SaveCourse persists a Course.
// PRE: entity has been validated
// POST: Entity is persisted; returns the row ID
func (s *SQLiteStore) SaveCourse(ctx context.Context, entity domain.Course) (int64, error) {
	if entity.ID == 0 {
		res, err := s.db.ExecContext(ctx, "INSERT INTO course (title) VALUES (?)", entity.Title)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
	_, err := s.db.ExecContext(ctx, "UPDATE course SET title = ? WHERE id = ?", entity.Title, entity.ID)
	return entity.ID, err
}

// GetClassBatch retrieves a ClassBatch by its ID.
// PRE: id > 0
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetClassBatch(ctx context.Context, id int64) (domain.ClassBatch, error) {
	var entity domain.ClassBatch
	err := s.db.QueryRowContext(ctx, "SELECT id, course_id, instructor_id FROM class_batch WHERE id = ?", id).
		Scan(&entity.ID, &entity.CourseID, &entity.InstructorID)
	if err == sql.ErrNoRows {
		return domain.ClassBatch{}, fmt.Errorf("class batch not found: %w", err)
	}
	return entity, err
}

// SaveClassBatch persists a ClassBatch.
// PRE: entity has been validated
// POST: Entity is persisted; returns the row ID
func (s *SQLiteStore) SaveClassBatch(ctx context.Context, entity domain.ClassBatch) (int64, error) {
	if entity.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO class_batch (course_id, instructor_id) VALUES (?, ?)",
			entity.CourseID, entity.InstructorID)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE class_batch SET course_id = ?, instructor_id = ? WHERE id = ?",
		entity.CourseID, entity.InstructorID, entity.ID)
	return entity.ID, err
}

// ListClassBatches retrieves all class batches for a course.
// PRE: courseID > 0
// POST: Returns matching entities
func (s *SQLiteStore) ListClassBatches(ctx context.Context, courseID int64) ([]domain.ClassBatch, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, course_id, instructor_id FROM class_batch WHERE course_id = ? ORDER BY id", courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ClassBatch
	for rows.Next() {
		var entity domain.ClassBatch
		if err := rows.Scan(&entity.ID, &entity.CourseID, &entity.InstructorID); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
