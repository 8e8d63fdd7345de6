package gate

import "lessonportal/internal/domain/user"

// Paths the gate can send a requester to.
const (
	LoginPath               = "/login"
	StudentDashboardPath    = "/student"
	InstructorDashboardPath = "/instructor"
)

// Kind identifies what the caller must do with an Outcome.
type Kind int

const (
	// KindContinue means the access gate passed; keep handling the request.
	KindContinue Kind = iota
	// KindRedirect means stop and redirect to Location.
	KindRedirect
	// KindForbidden means stop and answer 403 with Message.
	KindForbidden
)

// Outcome is the typed result of the access gate. The gate itself does
// no HTTP I/O; a single dispatcher at the top of each handler acts on
// the outcome, which keeps the check logic unit-testable.
type Outcome struct {
	Kind     Kind
	Location string // redirect target when Kind == KindRedirect
	Message  string // denial message when Kind == KindForbidden
}

// Continue returns the outcome that lets the request proceed.
func Continue() Outcome {
	return Outcome{Kind: KindContinue}
}

// Redirect returns an outcome sending the requester elsewhere.
func Redirect(location string) Outcome {
	return Outcome{Kind: KindRedirect, Location: location}
}

// Forbidden returns an outcome denying the request with a message.
func Forbidden(message string) Outcome {
	return Outcome{Kind: KindForbidden, Message: message}
}

// Allowed reports whether the request may proceed.
func (o Outcome) Allowed() bool {
	return o.Kind == KindContinue
}

// RoleDashboard returns the dashboard path for a role. Unknown roles go
// back to login.
func RoleDashboard(role string) string {
	switch role {
	case user.RoleStudent:
		return StudentDashboardPath
	case user.RoleInstructor:
		return InstructorDashboardPath
	}
	return LoginPath
}
