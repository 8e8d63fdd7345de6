package user

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role constants for portal users.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("user email must be valid")
	ErrInvalidRole  = errors.New("role must be 'student' or 'instructor'")
	ErrNoPassword   = errors.New("password cannot be empty")
)

// User holds state for a portal account.
type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash string
}

// Validate checks if the User has valid data.
// PRE: User struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@', Role must be a known role
func (u *User) Validate() error {
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if len(u.FirstName) > MaxNameLength || len(u.LastName) > MaxNameLength {
		return errors.New("name cannot exceed 100 characters")
	}
	if u.Role != RoleStudent && u.Role != RoleInstructor {
		return ErrInvalidRole
	}
	return nil
}

// DisplayName returns the user's full name, falling back to the email.
// INVARIANT: User fields are not mutated
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty
// POST: PasswordHash is set to bcrypt hash
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrNoPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
// PRE: PasswordHash is set
// POST: Returns nil on match, error otherwise
func (u *User) CheckPassword(plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext))
}

// IsAllowedRole reports whether role is one of the roles the portal serves.
func IsAllowedRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor
}

// Profile is the display identity rendered on handouts.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
}

// IsPresent reports whether the profile carries any usable display data.
// INVARIANT: Profile fields are not mutated
func (p Profile) IsPresent() bool {
	return p.FirstName != "" || p.LastName != "" || p.Email != ""
}

// FullName returns the profile's full name, possibly empty.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ProfileOf extracts the display profile from a user record.
func ProfileOf(u User) Profile {
	return Profile{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
