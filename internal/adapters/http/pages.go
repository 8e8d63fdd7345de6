package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"lessonportal/internal/adapters/http/middleware"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// pageData is what the layout template renders around each page body.
type pageData struct {
	Title     string
	Body      template.HTML
	LoggedIn  bool
	Role      string
	Name      string
	CSRFToken string
}

var layoutTpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} — Excel Courses</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; color: #1a1a2e; }
nav { background: #1d6f42; color: #fff; padding: 0.6rem 1.2rem; display: flex; gap: 1rem; align-items: center; }
nav a { color: #fff; text-decoration: none; }
nav form { margin-left: auto; }
main { max-width: 56rem; margin: 1.5rem auto; padding: 0 1.2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
.actions { margin: 1.2rem 0; display: flex; gap: 0.8rem; }
.actions a, .actions button { padding: 0.4rem 0.8rem; }
.flash { background: #e7f6ec; border: 1px solid #1d6f42; padding: 0.6rem; }
.error { background: #fdecea; border: 1px solid #b3261e; padding: 0.6rem; }
@media print { nav, .actions { display: none; } }
</style>
</head>
<body>
<nav>
<strong>Excel Courses</strong>
{{if .LoggedIn}}
<a href="/lessons">Lessons</a>
{{if eq .Role "student"}}<a href="/student">Dashboard</a>{{end}}
{{if eq .Role "instructor"}}<a href="/instructor">Dashboard</a>{{end}}
<form method="POST" action="/logout">
<input type="hidden" name="gorilla.csrf.Token" value="{{.CSRFToken}}">
<button type="submit">Log out ({{.Name}})</button>
</form>
{{else}}
<a href="/login">Log in</a>
{{end}}
</nav>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// renderPage writes a full HTML page: the shared layout around the
// page body.
func renderPage(w http.ResponseWriter, r *http.Request, status int, title string, body template.HTML) {
	data := pageData{
		Title:     title,
		Body:      body,
		CSRFToken: csrf.Token(r),
	}
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		data.LoggedIn = true
		data.Role = sess.Role
		data.Name = sess.FirstName
		if data.Name == "" {
			data.Name = sess.Email
		}
	}

	var buf bytes.Buffer
	if err := layoutTpl.Execute(&buf, data); err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// csrfToken returns the per-request CSRF token for form templates.
func csrfToken(r *http.Request) string {
	return csrf.Token(r)
}

// renderBody executes a page body template into HTML for renderPage.
func renderBody(tpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
