package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"lessonportal/internal/adapters/http/middleware"
	"lessonportal/internal/adapters/pdf"
	"lessonportal/internal/application/gate"
	"lessonportal/internal/application/handout"
	"lessonportal/internal/application/orchestrators"
	"lessonportal/internal/application/projections"
	"lessonportal/internal/domain/course"
	"lessonportal/internal/domain/lesson"
	"lessonportal/internal/domain/user"
)

// RequestContext is everything a lesson handler needs, resolved once at
// the top of the request: the authenticated session, the lesson, and
// the class scope (zero when no valid class was named).
type RequestContext struct {
	Session middleware.Session
	Week    int
	Lesson  lesson.Definition
	ClassID int64
}

// parseClassID reads a class scope from a raw query or form value.
// Anything that is not a strictly positive integer means no class was
// named and the broader program check applies.
func parseClassID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// resolveLessonRequest builds the RequestContext for a lesson route.
// A missing session yields a login redirect outcome; an unknown week is
// reported separately so the handler can 404.
func resolveLessonRequest(r *http.Request, classRaw string) (RequestContext, gate.Outcome, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		return RequestContext{}, gate.Redirect(gate.LoginPath), false
	}

	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		return RequestContext{}, gate.Continue(), false
	}
	def, ok := lesson.Get(week)
	if !ok {
		return RequestContext{}, gate.Continue(), false
	}

	ctx := RequestContext{
		Session: sess,
		Week:    week,
		Lesson:  def,
		ClassID: parseClassID(classRaw),
	}
	outcome := projections.QueryCheckLessonAccess(r.Context(), projections.CheckLessonAccessQuery{
		UserID:  sess.UserID,
		Role:    sess.Role,
		ClassID: ctx.ClassID,
	}, projections.CheckLessonAccessDeps{AccessStore: stores.AccessStore})
	return ctx, outcome, true
}

// dispatchOutcome acts on a gate outcome. It returns true when the
// response has been written and the handler must stop.
func dispatchOutcome(w http.ResponseWriter, r *http.Request, o gate.Outcome) bool {
	switch o.Kind {
	case gate.KindRedirect:
		http.Redirect(w, r, o.Location, http.StatusSeeOther)
		return true
	case gate.KindForbidden:
		renderForbidden(w, r, o.Message)
		return true
	}
	return false
}

var forbiddenTpl = template.Must(template.New("forbidden").Parse(`
<h1>Not available</h1>
<p class="error">{{.Message}}</p>
<p>If you believe this is a mistake, contact <a href="mailto:{{.Support}}">{{.Support}}</a>.</p>
`))

func renderForbidden(w http.ResponseWriter, r *http.Request, message string) {
	body, err := renderBody(forbiddenTpl, map[string]string{
		"Message": message,
		"Support": projections.SupportEmail,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderPage(w, r, http.StatusForbidden, "Not available", body)
}

// accessLabel is the identity caption rendered on handouts.
func accessLabel(role string) string {
	if role == user.RoleInstructor {
		return "Instructor"
	}
	return "Student"
}

func resolveIdentity(r *http.Request, ctx RequestContext) handout.Identity {
	result := projections.QueryHandoutIdentity(r.Context(), projections.HandoutIdentityQuery{
		UserID:            ctx.Session.UserID,
		ClassID:           ctx.ClassID,
		SessionViewer:     ctx.Session.ViewerProfile(),
		SessionInstructor: ctx.Session.InstructorProfile(),
	}, projections.HandoutIdentityDeps{
		UserStore:   stores.UserStore,
		AccessStore: stores.AccessStore,
	})
	return handout.Identity{
		Viewer:      result.Viewer,
		Instructor:  result.Instructor,
		AccessLabel: accessLabel(ctx.Session.Role),
	}
}

var lessonIndexTpl = template.Must(template.New("lessonIndex").Parse(`
<h1>Course handouts</h1>
<ul>
{{range .Weeks}}<li><a href="/lessons/week/{{.Week}}{{$.ClassQuery}}">Week {{.Week}}: {{.Topic}}</a></li>
{{end}}</ul>
`))

func handleLessonIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
		return
	}
	classID := parseClassID(r.URL.Query().Get("class"))
	outcome := projections.QueryCheckLessonAccess(r.Context(), projections.CheckLessonAccessQuery{
		UserID:  sess.UserID,
		Role:    sess.Role,
		ClassID: classID,
	}, projections.CheckLessonAccessDeps{AccessStore: stores.AccessStore})
	if dispatchOutcome(w, r, outcome) {
		return
	}

	weeks := lesson.Weeks()
	classQuery := ""
	if classID > 0 {
		classQuery = fmt.Sprintf("?class=%d", classID)
	}
	body, err := renderBody(lessonIndexTpl, map[string]any{
		"Weeks":      weeks,
		"ClassQuery": classQuery,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderPage(w, r, http.StatusOK, "Course handouts", body)
}

var lessonPageTpl = template.Must(template.New("lessonPage").Parse(`
{{if .Sent}}<p class="flash">Your handout is on its way to {{.Email}}.</p>{{end}}
<div class="actions">
<a href="/lessons/week/{{.Week}}?download=pdf{{.ClassParam}}">Download PDF</a>
<form method="POST" action="/lessons/week/{{.Week}}/email">
<input type="hidden" name="gorilla.csrf.Token" value="{{.CSRFToken}}">
{{if .ClassID}}<input type="hidden" name="class" value="{{.ClassID}}">{{end}}
<button type="submit">Email me this handout</button>
</form>
</div>
{{.Fragment}}
`))

func handleLessonWeek(w http.ResponseWriter, r *http.Request) {
	ctx, outcome, ok := resolveLessonRequest(r, r.URL.Query().Get("class"))
	if !ok {
		if dispatchOutcome(w, r, outcome) {
			return
		}
		http.NotFound(w, r)
		return
	}
	if dispatchOutcome(w, r, outcome) {
		return
	}

	identity := resolveIdentity(r, ctx)

	if r.URL.Query().Get("download") == "pdf" {
		streamHandoutPDF(w, r, ctx, identity)
		return
	}

	fragment, err := handout.BuildFragment(ctx.Lesson, identity, timeNow())
	if err != nil {
		internalError(w, err)
		return
	}
	classParam := ""
	if ctx.ClassID > 0 {
		classParam = fmt.Sprintf("&class=%d", ctx.ClassID)
	}
	body, err := renderBody(lessonPageTpl, map[string]any{
		"Week":       ctx.Week,
		"ClassID":    ctx.ClassID,
		"ClassParam": classParam,
		"CSRFToken":  csrfToken(r),
		"Fragment":   fragment,
		"Sent":       r.URL.Query().Get("sent") == "1",
		"Email":      identity.Viewer.Email,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderPage(w, r, http.StatusOK, ctx.Lesson.Title(), body)
}

var pdfMissingTpl = template.Must(template.New("pdfMissing").Parse(`
<h1>PDF download is not set up</h1>
<p class="error">This server has no PDF engine configured, so the handout cannot be exported right now.</p>
<p>To enable PDF downloads, the administrator should set <code>PORTAL_PDF_ENGINE=fpdf</code> and restart the server.</p>
<p>In the meantime you can open the <a href="/lessons/week/{{.Week}}{{.ClassQuery}}">web version</a> and use your browser's print dialog to save it as a PDF.</p>
`))

var pdfFailedTpl = template.Must(template.New("pdfFailed").Parse(`
<h1>Export failed</h1>
<p class="error">The handout could not be exported. The problem has been recorded.</p>
<p>Try the <a href="/lessons/week/{{.Week}}{{.ClassQuery}}">web version</a>, or contact <a href="mailto:{{.Support}}">{{.Support}}</a> if this keeps happening.</p>
`))

// streamHandoutPDF exports the lesson and streams it as a download.
// A missing engine gets a remediation page rather than an error; a
// render failure gets an apology page and a log entry.
func streamHandoutPDF(w http.ResponseWriter, r *http.Request, ctx RequestContext, identity handout.Identity) {
	classQuery := ""
	if ctx.ClassID > 0 {
		classQuery = fmt.Sprintf("?class=%d", ctx.ClassID)
	}

	if err := pdfExporter.Available(); err != nil {
		body, terr := renderBody(pdfMissingTpl, map[string]any{
			"Week":       ctx.Week,
			"ClassQuery": classQuery,
		})
		if terr != nil {
			internalError(w, terr)
			return
		}
		renderPage(w, r, http.StatusOK, "PDF not available", body)
		return
	}

	now := timeNow()
	fragment, err := handout.BuildFragment(ctx.Lesson, identity, now)
	if err != nil {
		internalError(w, err)
		return
	}

	doc := pdf.Document{
		Title:   ctx.Lesson.Title(),
		Author:  identity.Instructor.FullName(),
		Subject: "Course handout",
		Program: course.ProgramFilter,
		CoverLines: []string{
			identity.Viewer.FullName(),
			identity.Viewer.Email,
			now.Format("2 January 2006"),
			fmt.Sprintf("Access level: %s", identity.AccessLabel),
		},
		HeaderLeft:  ctx.Lesson.Title(),
		HeaderRight: now.Format("2 January 2006"),
		FooterEmail: identity.Viewer.Email,
		BodyHTML:    string(fragment),
	}
	data, err := pdfExporter.Render(doc)
	if err != nil {
		body, terr := renderBody(pdfFailedTpl, map[string]any{
			"Week":       ctx.Week,
			"ClassQuery": classQuery,
			"Support":    projections.SupportEmail,
		})
		if terr != nil {
			internalError(w, terr)
			return
		}
		renderPage(w, r, http.StatusInternalServerError, "Export failed", body)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", ctx.Lesson.ExportFilename(now)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

func handleEmailHandout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx, outcome, ok := resolveLessonRequest(r, r.FormValue("class"))
	if !ok {
		if dispatchOutcome(w, r, outcome) {
			return
		}
		http.NotFound(w, r)
		return
	}
	if dispatchOutcome(w, r, outcome) {
		return
	}

	identity := resolveIdentity(r, ctx)

	_, err := orchestrators.ExecuteEmailHandout(r.Context(), orchestrators.EmailHandoutInput{
		Lesson:   ctx.Lesson,
		Identity: identity,
		To:       ctx.Session.Email,
		Now:      timeNow(),
	}, orchestrators.EmailHandoutDeps{
		Exporter: pdfExporter,
		Sender:   emailSender,
		From:     emailFromAddress,
		ReplyTo:  emailReplyTo,
	})
	if err != nil {
		if errors.Is(err, pdf.ErrEngineUnavailable) {
			classQuery := ""
			if ctx.ClassID > 0 {
				classQuery = fmt.Sprintf("?class=%d", ctx.ClassID)
			}
			body, terr := renderBody(pdfMissingTpl, map[string]any{
				"Week":       ctx.Week,
				"ClassQuery": classQuery,
			})
			if terr != nil {
				internalError(w, terr)
				return
			}
			renderPage(w, r, http.StatusOK, "PDF not available", body)
			return
		}
		internalError(w, err)
		return
	}

	target := fmt.Sprintf("/lessons/week/%d?sent=1", ctx.Week)
	if ctx.ClassID > 0 {
		target += fmt.Sprintf("&class=%d", ctx.ClassID)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
