// Package pdf wraps the PDF engine behind an Exporter interface so the
// engine stays pluggable: handlers consume the interface and degrade to
// a remediation page when no engine is configured.
package pdf

import "errors"

// ErrEngineUnavailable signals that no PDF engine is configured. The
// HTTP layer answers it with install instructions and a print fallback
// rather than a generic failure.
var ErrEngineUnavailable = errors.New("pdf engine is not available")

// Document describes one handout export. BodyHTML is the shared lesson
// fragment; everything else is cover and header/footer chrome.
type Document struct {
	Title       string   // document title and cover headline
	Author      string   // metadata author (the instructor)
	Subject     string   // metadata subject
	Program     string   // program name shown on the cover
	CoverLines  []string // cover detail lines: student, email, date, access label
	HeaderLeft  string   // left header text on content pages (week title)
	HeaderRight string   // right header text on content pages (date)
	FooterEmail string   // email shown beside the page number
	BodyHTML    string   // lesson fragment HTML
}

// Exporter renders handout documents to PDF bytes.
type Exporter interface {
	// Available reports whether the engine can render at all.
	// ErrEngineUnavailable means the caller should offer remediation.
	Available() error

	// Render produces the binary document. Engine panics are recovered
	// and returned as errors; they never propagate.
	Render(doc Document) ([]byte, error)
}
