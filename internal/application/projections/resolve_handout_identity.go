package projections

import (
	"context"

	domainUser "lessonportal/internal/domain/user"
)

// SupportEmail is the address shown when no instructor can be resolved.
const SupportEmail = "support@excelcourses.nz"

// DefaultInstructor is the final fallback identity for handout footers
// and PDF covers when neither the class batch nor the session names one.
var DefaultInstructor = domainUser.Profile{
	FirstName: "Your",
	LastName:  "Instructor",
	Email:     SupportEmail,
}

// HandoutIdentityQuery carries query parameters. The session profiles
// are whatever display fields were cached at login, possibly empty.
type HandoutIdentityQuery struct {
	UserID            int64
	ClassID           int64 // zero when no class was named
	SessionViewer     domainUser.Profile
	SessionInstructor domainUser.Profile
}

// HandoutIdentityResult carries the resolved display identities.
type HandoutIdentityResult struct {
	Viewer     domainUser.Profile
	Instructor domainUser.Profile
}

// HandoutIdentityDeps holds dependencies for HandoutIdentity.
type HandoutIdentityDeps struct {
	UserStore   UserStore
	AccessStore AccessStore
}

// profileSource is one strategy in an ordered fallback chain. It
// reports whether it produced a usable profile.
type profileSource func(ctx context.Context) (domainUser.Profile, bool)

// firstProfile tries each source in order and returns the first present
// profile, or the fallback when none produce one.
func firstProfile(ctx context.Context, fallback domainUser.Profile, sources ...profileSource) domainUser.Profile {
	for _, source := range sources {
		if p, ok := source(ctx); ok {
			return p
		}
	}
	return fallback
}

// QueryHandoutIdentity resolves the viewer and instructor display
// identities for a handout. Lookups are best-effort: a failed or empty
// lookup falls through to the session cache, and for the instructor
// finally to the generic support identity. This projection never
// errors — rendering must not fail over missing profile data.
// PRE: UserID comes from an authenticated session
// POST: Both result profiles are populated as far as data allows
func QueryHandoutIdentity(ctx context.Context, query HandoutIdentityQuery, deps HandoutIdentityDeps) HandoutIdentityResult {
	viewer := firstProfile(ctx, query.SessionViewer,
		func(ctx context.Context) (domainUser.Profile, bool) {
			u, err := deps.UserStore.GetByID(ctx, query.UserID)
			if err != nil {
				return domainUser.Profile{}, false
			}
			p := domainUser.ProfileOf(u)
			return p, p.IsPresent()
		},
		func(ctx context.Context) (domainUser.Profile, bool) {
			return query.SessionViewer, query.SessionViewer.IsPresent()
		},
	)

	instructor := firstProfile(ctx, DefaultInstructor,
		func(ctx context.Context) (domainUser.Profile, bool) {
			if query.ClassID <= 0 {
				return domainUser.Profile{}, false
			}
			p, err := deps.AccessStore.GetClassInstructor(ctx, query.ClassID)
			if err != nil {
				return domainUser.Profile{}, false
			}
			return p, p.IsPresent()
		},
		func(ctx context.Context) (domainUser.Profile, bool) {
			return query.SessionInstructor, query.SessionInstructor.IsPresent()
		},
	)

	return HandoutIdentityResult{Viewer: viewer, Instructor: instructor}
}
