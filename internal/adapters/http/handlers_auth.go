package web

import (
	"context"
	"html/template"
	"net/http"

	"lessonportal/internal/adapters/http/middleware"
	"lessonportal/internal/application/gate"
	"lessonportal/internal/application/orchestrators"
	"lessonportal/internal/domain/lesson"
	"lessonportal/internal/domain/user"
)

var loginTpl = template.Must(template.New("login").Parse(`
<h1>Log in</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/login">
<input type="hidden" name="gorilla.csrf.Token" value="{{.CSRFToken}}">
<p><label>Email<br><input type="email" name="email" value="{{.Email}}" required></label></p>
<p><label>Password<br><input type="password" name="password" required></label></p>
<p><button type="submit">Log in</button></p>
</form>
`))

type loginPageData struct {
	Error     string
	Email     string
	CSRFToken string
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, gate.RoleDashboard(sess.Role), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
}

func handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, gate.RoleDashboard(sess.Role), http.StatusSeeOther)
		return
	}
	renderLogin(w, r, http.StatusOK, loginPageData{})
}

func handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	input := orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{UserStore: stores.UserStore})
	if err != nil {
		renderLogin(w, r, http.StatusUnauthorized, loginPageData{
			Error: "Invalid email or password.",
			Email: input.Email,
		})
		return
	}

	session := middleware.Session{
		UserID:    result.UserID,
		Email:     result.Email,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Role:      result.Role,
	}
	if instructor, ok := lookupInstructorForLogin(r.Context(), result); ok {
		session.InstructorName = instructor.FullName()
		session.InstructorEmail = instructor.Email
	}

	token, err := sessions.Create(session)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, gate.RoleDashboard(result.Role), http.StatusSeeOther)
}

// lookupInstructorForLogin caches an instructor identity in the session:
// a student's first enrolled class instructor, or the instructor's own
// identity. Best-effort — a miss just leaves the cache empty.
func lookupInstructorForLogin(ctx context.Context, result orchestrators.LoginResult) (user.Profile, bool) {
	if result.Role == user.RoleInstructor {
		return user.Profile{FirstName: result.FirstName, LastName: result.LastName, Email: result.Email}, true
	}
	enrollments, err := stores.EnrollmentStore.ListByStudent(ctx, result.UserID)
	if err != nil {
		return user.Profile{}, false
	}
	for _, e := range enrollments {
		if !e.Qualifies() {
			continue
		}
		p, err := stores.AccessStore.GetClassInstructor(ctx, e.ClassID)
		if err == nil && p.IsPresent() {
			return p, true
		}
	}
	return user.Profile{}, false
}

func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
}

func renderLogin(w http.ResponseWriter, r *http.Request, status int, data loginPageData) {
	data.CSRFToken = csrfToken(r)
	body, err := renderBody(loginTpl, data)
	if err != nil {
		internalError(w, err)
		return
	}
	renderPage(w, r, status, "Log in", body)
}

var dashboardTpl = template.Must(template.New("dashboard").Parse(`
<h1>Kia ora, {{.Name}}</h1>
<p>{{.Blurb}}</p>
<h2>Lessons</h2>
<ul>
{{range .Weeks}}<li><a href="/lessons/week/{{.Week}}">Week {{.Week}}: {{.Topic}}</a></li>
{{end}}</ul>
`))

type dashboardPageData struct {
	Name  string
	Blurb string
	Weeks []lesson.Definition
}

func handleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	renderDashboard(w, r, user.RoleStudent,
		"Your course handouts are below. Open a lesson to read it online or download the PDF.")
}

func handleInstructorDashboard(w http.ResponseWriter, r *http.Request) {
	renderDashboard(w, r, user.RoleInstructor,
		"Handouts for the classes you teach. Open a lesson to preview what your students see.")
}

func renderDashboard(w http.ResponseWriter, r *http.Request, role, blurb string) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, gate.LoginPath, http.StatusSeeOther)
		return
	}
	if sess.Role != role {
		http.Redirect(w, r, gate.RoleDashboard(sess.Role), http.StatusSeeOther)
		return
	}

	weeks := lesson.Weeks()
	name := sess.FirstName
	if name == "" {
		name = sess.Email
	}
	body, err := renderBody(dashboardTpl, dashboardPageData{Name: name, Blurb: blurb, Weeks: weeks})
	if err != nil {
		internalError(w, err)
		return
	}
	renderPage(w, r, http.StatusOK, "Dashboard", body)
}
