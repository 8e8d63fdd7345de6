package enrollment

import (
	"context"
	"database/sql"
	"fmt"

	"lessonportal/internal/adapters/storage"
	domain "lessonportal/internal/domain/enrollment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new enrollment store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Enrollment by its ID.
// PRE: id > 0
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Enrollment, error) {
	var entity domain.Enrollment
	err := s.db.QueryRowContext(ctx,
		"SELECT id, student_id, class_id, status FROM enrollment WHERE id = ?", id).
		Scan(&entity.ID, &entity.StudentID, &entity.ClassID, &entity.Status)
	if err == sql.ErrNoRows {
		return domain.Enrollment{}, fmt.Errorf("enrollment not found: %w", err)
	}
	return entity, err
}

// Save persists an Enrollment.
// PRE: entity has been validated
// POST: Entity is persisted; returns the row ID
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Enrollment) (int64, error) {
	if entity.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO enrollment (student_id, class_id, status) VALUES (?, ?, ?)",
			entity.StudentID, entity.ClassID, entity.Status)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE enrollment SET student_id = ?, class_id = ?, status = ? WHERE id = ?",
		entity.StudentID, entity.ClassID, entity.Status, entity.ID)
	return entity.ID, err
}

// ListByStudent retrieves all enrollments for a student.
// PRE: studentID > 0
// POST: Returns matching entities
func (s *SQLiteStore) ListByStudent(ctx context.Context, studentID int64) ([]domain.Enrollment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, student_id, class_id, status FROM enrollment WHERE student_id = ? ORDER BY id", studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Enrollment
	for rows.Next() {
		var entity domain.Enrollment
		if err := rows.Scan(&entity.ID, &entity.StudentID, &entity.ClassID, &entity.Status); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Delete removes an Enrollment from the database.
// PRE: id > 0
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM enrollment WHERE id = ?", id)
	return err
}
