package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS user (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS course (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS class_batch (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id INTEGER NOT NULL,
		instructor_id INTEGER NOT NULL,
		FOREIGN KEY (course_id) REFERENCES course(id),
		FOREIGN KEY (instructor_id) REFERENCES user(id)
	);

	CREATE TABLE IF NOT EXISTS enrollment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL,
		class_id INTEGER NOT NULL,
		status TEXT NOT NULL,
		FOREIGN KEY (student_id) REFERENCES user(id),
		FOREIGN KEY (class_id) REFERENCES class_batch(id)
	);

	CREATE INDEX IF NOT EXISTS idx_enrollment_student ON enrollment(student_id);
	CREATE INDEX IF NOT EXISTS idx_enrollment_class ON enrollment(class_id);
	CREATE INDEX IF NOT EXISTS idx_class_batch_instructor ON class_batch(instructor_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
