package handout

import (
	"html"
	"strings"
	"testing"
	"time"

	"lessonportal/internal/domain/lesson"
	domainUser "lessonportal/internal/domain/user"
)

func testDefinition() lesson.Definition {
	return lesson.Definition{
		Week:       2,
		Topic:      "Formatting and Printing",
		Objectives: []string{"Apply number formats", "Set up printing"},
		Sections: []lesson.Section{
			{Heading: "Number Formats", Body: "A format changes how a value is **displayed**."},
		},
		Exercise: lesson.Exercise{Title: "Dress Up a Sheet", Steps: []string{"Open the workbook", "Format the Amount column"}},
		Homework: []string{"Format your own workbook"},
		Shortcuts: []lesson.Shortcut{
			{Keys: "Ctrl+1", Action: "Open Format Cells"},
		},
		KeyTerms: []lesson.KeyTerm{
			{Term: "Number format", Definition: "A display rule"},
		},
	}
}

func testIdentity() Identity {
	return Identity{
		Viewer:      domainUser.Profile{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"},
		Instructor:  domainUser.Profile{FirstName: "Pat", LastName: "Reed", Email: "pat@excelcourses.nz"},
		AccessLabel: "Student",
	}
}

// TestBuildFragment_ContainsAllLessonParts verifies every content block lands in the fragment.
func TestBuildFragment_ContainsAllLessonParts(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	frag, err := BuildFragment(testDefinition(), testIdentity(), now)
	if err != nil {
		t.Fatalf("BuildFragment() error = %v", err)
	}
	// The template escaper encodes "+" as &#43; in element content, so
	// compare against the decoded text.
	got := html.UnescapeString(string(frag))

	for _, want := range []string{
		"Week 2: Formatting and Printing",
		"Apply number formats",
		"Number Formats",
		"<strong>displayed</strong>", // markdown converted
		"Exercise: Dress Up a Sheet",
		"Format the Amount column",
		"Format your own workbook",
		"Ctrl+1",
		"Number format",
		"Student: Ana Silva (ana@example.com)",
		"Instructor: Pat Reed (pat@excelcourses.nz)",
		"31 August 2026",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("fragment missing %q", want)
		}
	}

	if !strings.Contains(string(frag), "Ctrl&#43;1") {
		t.Error("fragment should carry the shortcut with entity-encoded '+'")
	}
}

// TestBuildFragment_EscapesMarkdownHTML verifies raw HTML in lesson copy cannot inject markup.
func TestBuildFragment_EscapesMarkdownHTML(t *testing.T) {
	def := testDefinition()
	def.Sections = []lesson.Section{{Heading: "Injected", Body: `<script>alert("x")</script>`}}

	frag, err := BuildFragment(def, testIdentity(), time.Now())
	if err != nil {
		t.Fatalf("BuildFragment() error = %v", err)
	}
	if strings.Contains(string(frag), "<script>alert") {
		t.Error("raw script tag survived markdown rendering")
	}
}

// TestBuildFragment_EmptyProfilesStillRender verifies rendering never fails over missing profile data.
func TestBuildFragment_EmptyProfilesStillRender(t *testing.T) {
	frag, err := BuildFragment(testDefinition(), Identity{AccessLabel: "Student"}, time.Now())
	if err != nil {
		t.Fatalf("BuildFragment() error = %v", err)
	}
	if !strings.Contains(string(frag), "Week 2") {
		t.Error("fragment missing lesson body with empty profiles")
	}
}

// TestBuildFragment_Deterministic verifies equal inputs render identical fragments.
// The page shell and the PDF export rely on this to share one body.
func TestBuildFragment_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	a, err := BuildFragment(testDefinition(), testIdentity(), now)
	if err != nil {
		t.Fatalf("BuildFragment() error = %v", err)
	}
	b, err := BuildFragment(testDefinition(), testIdentity(), now)
	if err != nil {
		t.Fatalf("BuildFragment() error = %v", err)
	}
	if a != b {
		t.Error("fragment rendering is not deterministic")
	}
}
