package lesson

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Domain errors
var (
	ErrInvalidWeek  = errors.New("lesson week must be positive")
	ErrEmptyTopic   = errors.New("lesson topic cannot be empty")
	ErrNoObjectives = errors.New("lesson requires at least one learning objective")
)

// Section is one titled block of lesson copy. The body is Markdown.
type Section struct {
	Heading string
	Body    string
}

// Exercise is the worked, step-by-step activity for the week.
type Exercise struct {
	Title string
	Steps []string
}

// Shortcut is one row of the keyboard-shortcut reference table.
type Shortcut struct {
	Keys   string
	Action string
}

// KeyTerm is one vocabulary entry for the week.
type KeyTerm struct {
	Term       string
	Definition string
}

// Definition is the full static copy for one lesson week. Every handout
// page is one generic viewer parameterized by a Definition; there is no
// per-week code.
type Definition struct {
	Week       int
	Topic      string
	Objectives []string
	Sections   []Section
	Exercise   Exercise
	Homework   []string
	Shortcuts  []Shortcut
	KeyTerms   []KeyTerm
}

// Validate checks if the Definition has valid data.
// PRE: Definition struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (d *Definition) Validate() error {
	if d.Week <= 0 {
		return ErrInvalidWeek
	}
	if strings.TrimSpace(d.Topic) == "" {
		return ErrEmptyTopic
	}
	if len(d.Objectives) == 0 {
		return ErrNoObjectives
	}
	return nil
}

// Title returns the full handout title, e.g. "Week 3: Formulas & Functions".
func (d *Definition) Title() string {
	return fmt.Sprintf("Week %d: %s", d.Week, d.Topic)
}

// ExportFilename returns the deterministic PDF attachment name for this
// lesson on a given day: "<Topic>_<YYYY-MM-DD>.pdf" with the topic
// reduced to filename-safe characters.
func (d *Definition) ExportFilename(now time.Time) string {
	topic := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		}
		return -1
	}, d.Topic)
	return fmt.Sprintf("%s_%s.pdf", topic, now.Format("2006-01-02"))
}
