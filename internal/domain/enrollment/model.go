package enrollment

import "errors"

// Status constants for the enrollment lifecycle.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusWithdrawn = "withdrawn"
)

// Domain errors
var (
	ErrInvalidStatus = errors.New("status must be 'pending', 'active', 'completed', or 'withdrawn'")
)

// Enrollment is a student's registration in a specific class batch.
type Enrollment struct {
	ID        int64
	StudentID int64
	ClassID   int64
	Status    string
}

// Validate checks if the Enrollment has valid data.
// PRE: Enrollment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (e *Enrollment) Validate() error {
	if e.StudentID == 0 {
		return errors.New("enrollment requires a student")
	}
	if e.ClassID == 0 {
		return errors.New("enrollment requires a class batch")
	}
	switch e.Status {
	case StatusPending, StatusActive, StatusCompleted, StatusWithdrawn:
		return nil
	}
	return ErrInvalidStatus
}

// Qualifies reports whether this enrollment grants handout access.
// Active and completed enrollments both qualify; completion does not
// revoke access to course material.
// INVARIANT: Status field is not mutated
func (e *Enrollment) Qualifies() bool {
	return IsQualifyingStatus(e.Status)
}

// IsQualifyingStatus reports whether a status value grants handout access.
func IsQualifyingStatus(status string) bool {
	return status == StatusActive || status == StatusCompleted
}
