package user

import (
	"context"
	"database/sql"
	"fmt"

	"lessonportal/internal/adapters/storage"
	domain "lessonportal/internal/domain/user"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new user store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const userColumns = "id, email, first_name, last_name, role, password_hash"

func scanUser(row *sql.Row) (domain.User, error) {
	var entity domain.User
	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.FirstName,
		&entity.LastName,
		&entity.Role,
		&entity.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("user not found: %w", err)
	}
	return entity, err
}

// GetByID retrieves a User by its ID.
// PRE: id > 0
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM user WHERE id = ?", id)
	return scanUser(row)
}

// GetByEmail retrieves a User by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM user WHERE email = ?", email)
	return scanUser(row)
}

// Save persists a User to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert when ID is zero, update otherwise); returns the row ID
func (s *SQLiteStore) Save(ctx context.Context, entity domain.User) (int64, error) {
	if entity.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO user (email, first_name, last_name, role, password_hash) VALUES (?, ?, ?, ?, ?)",
			entity.Email, entity.FirstName, entity.LastName, entity.Role, entity.PasswordHash,
		)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE user SET email = ?, first_name = ?, last_name = ?, role = ?, password_hash = ? WHERE id = ?",
		entity.Email, entity.FirstName, entity.LastName, entity.Role, entity.PasswordHash, entity.ID,
	)
	return entity.ID, err
}

// Count returns the total number of users.
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user").Scan(&count)
	return count, err
}
