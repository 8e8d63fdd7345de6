// Package handout builds the lesson content fragment shared verbatim by
// the interactive page shell and the PDF export. Rendering is a pure
// function of the lesson definition, the resolved identities, and the
// clock — no database access happens here.
package handout

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"lessonportal/internal/domain/lesson"
	domainUser "lessonportal/internal/domain/user"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Identity carries the resolved display identities for the footer and cover.
type Identity struct {
	Viewer      domainUser.Profile
	Instructor  domainUser.Profile
	AccessLabel string // "Student" or "Instructor"
}

type fragmentData struct {
	Title       string
	Objectives  []string
	Sections    []renderedSection
	Exercise    lesson.Exercise
	Homework    []string
	Shortcuts   []lesson.Shortcut
	KeyTerms    []lesson.KeyTerm
	ViewerName  string
	ViewerEmail string
	Instructor  string
	InstrEmail  string
	AccessLabel string
	Date        string
}

type renderedSection struct {
	Heading string
	Body    template.HTML
}

var fragmentTpl = template.Must(template.New("fragment").Parse(`<article class="handout">
<h1>{{.Title}}</h1>

<section class="objectives">
<h2>Learning Objectives</h2>
<ul>
{{- range .Objectives}}
<li>{{.}}</li>
{{- end}}
</ul>
</section>

{{range .Sections}}<section class="topic">
<h2>{{.Heading}}</h2>
{{.Body}}
</section>
{{end -}}

<section class="exercise">
<h2>Exercise: {{.Exercise.Title}}</h2>
<ol>
{{- range .Exercise.Steps}}
<li>{{.}}</li>
{{- end}}
</ol>
</section>

<section class="homework">
<h2>Homework</h2>
<ul>
{{- range .Homework}}
<li>{{.}}</li>
{{- end}}
</ul>
</section>

<section class="shortcuts">
<h2>Shortcut Reference</h2>
<table>
<tr><th>Keys</th><th>Action</th></tr>
{{- range .Shortcuts}}
<tr><td>{{.Keys}}</td><td>{{.Action}}</td></tr>
{{- end}}
</table>
</section>

<section class="key-terms">
<h2>Key Terms</h2>
<dl>
{{- range .KeyTerms}}
<dt>{{.Term}}</dt><dd>{{.Definition}}</dd>
{{- end}}
</dl>
</section>

<footer class="identity">
<p>{{.AccessLabel}}: {{.ViewerName}} ({{.ViewerEmail}})</p>
<p>Instructor: {{.Instructor}} ({{.InstrEmail}})</p>
<p>Date: {{.Date}}</p>
</footer>
</article>
`))

// renderMarkdown converts section copy to HTML, escaping on failure.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// BuildFragment renders the full lesson body for one week. The same
// fragment is embedded by both output shells; only the surrounding
// chrome differs between them.
// PRE: def passes Validate
// POST: Returns the fragment HTML, or an error if templating fails
func BuildFragment(def lesson.Definition, id Identity, now time.Time) (template.HTML, error) {
	sections := make([]renderedSection, 0, len(def.Sections))
	for _, s := range def.Sections {
		sections = append(sections, renderedSection{Heading: s.Heading, Body: renderMarkdown(s.Body)})
	}

	data := fragmentData{
		Title:       def.Title(),
		Objectives:  def.Objectives,
		Sections:    sections,
		Exercise:    def.Exercise,
		Homework:    def.Homework,
		Shortcuts:   def.Shortcuts,
		KeyTerms:    def.KeyTerms,
		ViewerName:  id.Viewer.FullName(),
		ViewerEmail: id.Viewer.Email,
		Instructor:  id.Instructor.FullName(),
		InstrEmail:  id.Instructor.Email,
		AccessLabel: id.AccessLabel,
		Date:        now.Format("2 January 2006"),
	}

	var buf bytes.Buffer
	if err := fragmentTpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render fragment: %w", err)
	}
	return template.HTML(buf.String()), nil
}
