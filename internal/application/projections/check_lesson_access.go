package projections

import (
	"context"
	"log/slog"

	"lessonportal/internal/application/gate"
	domainUser "lessonportal/internal/domain/user"
)

// CheckLessonAccessQuery carries query parameters. ClassID zero means
// no specific class was named and general program access applies.
type CheckLessonAccessQuery struct {
	UserID  int64
	Role    string
	ClassID int64
}

// CheckLessonAccessDeps holds dependencies for CheckLessonAccess.
type CheckLessonAccessDeps struct {
	AccessStore AccessStore
}

// DeniedClassMessage is the body of the 403 answer for a named class.
const DeniedClassMessage = "You do not have access to the handouts for this class."

// QueryCheckLessonAccess decides whether the requester may view a
// lesson handout and, when not, how the denial is delivered: a named
// class denies with 403, an unscoped check bounces to the requester's
// dashboard. A store failure counts as zero matches — access checks
// never surface infrastructure errors to the caller.
// PRE: Query fields are taken from an authenticated session
// POST: Returns Continue, Forbidden, or Redirect; never an error
func QueryCheckLessonAccess(ctx context.Context, query CheckLessonAccessQuery, deps CheckLessonAccessDeps) gate.Outcome {
	scoped := query.ClassID > 0

	var count int
	var err error
	switch {
	case query.Role == domainUser.RoleStudent && scoped:
		count, err = deps.AccessStore.CountStudentClassAccess(ctx, query.UserID, query.ClassID)
	case query.Role == domainUser.RoleStudent:
		count, err = deps.AccessStore.CountStudentProgramAccess(ctx, query.UserID)
	case query.Role == domainUser.RoleInstructor && scoped:
		count, err = deps.AccessStore.CountInstructorClassAccess(ctx, query.ClassID, query.UserID)
	case query.Role == domainUser.RoleInstructor:
		count, err = deps.AccessStore.CountInstructorProgramAccess(ctx, query.UserID)
	default:
		return gate.Redirect(gate.LoginPath)
	}
	if err != nil {
		slog.Warn("access_event", "event", "count_query_failed", "user_id", query.UserID, "role", query.Role, "class_id", query.ClassID, "error", err.Error())
		count = 0
	}

	if count > 0 {
		return gate.Continue()
	}

	slog.Info("access_event", "event", "denied", "user_id", query.UserID, "role", query.Role, "class_id", query.ClassID, "scoped", scoped)
	if scoped {
		return gate.Forbidden(DeniedClassMessage)
	}
	return gate.Redirect(gate.RoleDashboard(query.Role))
}
