package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lessonportal/internal/adapters/email"
	"lessonportal/internal/adapters/http/middleware"
	"lessonportal/internal/adapters/pdf"
	courseDomain "lessonportal/internal/domain/course"
	enrollmentDomain "lessonportal/internal/domain/enrollment"
	"lessonportal/internal/domain/lesson"
	"lessonportal/internal/domain/user"
)

type mockUserStore struct {
	users map[int64]user.User
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, errors.New("user not found")
	}
	return u, nil
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, errors.New("user not found")
}

func (m *mockUserStore) Save(_ context.Context, u user.User) (int64, error) {
	return u.ID, nil
}

func (m *mockUserStore) Count(_ context.Context) (int, error) {
	return len(m.users), nil
}

// mockAccessStore returns configured counts and records which intent ran.
type mockAccessStore struct {
	studentClass   int
	studentProgram int
	instrClass     int
	instrProgram   int
	err            error
	instructor     user.Profile
	called         string
}

func (m *mockAccessStore) CountStudentClassAccess(_ context.Context, _, _ int64) (int, error) {
	m.called = "student_class"
	return m.studentClass, m.err
}

func (m *mockAccessStore) CountStudentProgramAccess(_ context.Context, _ int64) (int, error) {
	m.called = "student_program"
	return m.studentProgram, m.err
}

func (m *mockAccessStore) CountInstructorClassAccess(_ context.Context, _, _ int64) (int, error) {
	m.called = "instructor_class"
	return m.instrClass, m.err
}

func (m *mockAccessStore) CountInstructorProgramAccess(_ context.Context, _ int64) (int, error) {
	m.called = "instructor_program"
	return m.instrProgram, m.err
}

func (m *mockAccessStore) GetClassInstructor(_ context.Context, _ int64) (user.Profile, error) {
	if !m.instructor.IsPresent() {
		return user.Profile{}, errors.New("no instructor")
	}
	return m.instructor, nil
}

type stubCourseStore struct{}

func (stubCourseStore) GetCourse(_ context.Context, _ int64) (courseDomain.Course, error) {
	return courseDomain.Course{}, errors.New("not found")
}
func (stubCourseStore) SaveCourse(_ context.Context, _ courseDomain.Course) (int64, error) {
	return 0, nil
}
func (stubCourseStore) FindCourseByTitle(_ context.Context, _ string) (courseDomain.Course, error) {
	return courseDomain.Course{}, errors.New("not found")
}
func (stubCourseStore) GetClassBatch(_ context.Context, _ int64) (courseDomain.ClassBatch, error) {
	return courseDomain.ClassBatch{}, errors.New("not found")
}
func (stubCourseStore) SaveClassBatch(_ context.Context, _ courseDomain.ClassBatch) (int64, error) {
	return 0, nil
}
func (stubCourseStore) ListClassBatches(_ context.Context, _ int64) ([]courseDomain.ClassBatch, error) {
	return nil, nil
}

type stubEnrollmentStore struct{}

func (stubEnrollmentStore) GetByID(_ context.Context, _ int64) (enrollmentDomain.Enrollment, error) {
	return enrollmentDomain.Enrollment{}, errors.New("not found")
}
func (stubEnrollmentStore) Save(_ context.Context, _ enrollmentDomain.Enrollment) (int64, error) {
	return 0, nil
}
func (stubEnrollmentStore) ListByStudent(_ context.Context, _ int64) ([]enrollmentDomain.Enrollment, error) {
	return nil, nil
}
func (stubEnrollmentStore) Delete(_ context.Context, _ int64) error { return nil }

type recordingSender struct {
	sent *email.SendRequest
}

func (s *recordingSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	s.sent = &req
	return email.SendResult{MessageID: "msg-test", SentAt: time.Now()}, nil
}

// setupWeb wires the handler globals with mocks and returns a bare mux
// (no middleware) so tests can inject sessions directly.
func setupWeb(t *testing.T, access *mockAccessStore) *http.ServeMux {
	t.Helper()
	stores = &Stores{
		UserStore: &mockUserStore{users: map[int64]user.User{
			7: {ID: 7, Email: "ana.silva@example.com", FirstName: "Ana", LastName: "Silva", Role: user.RoleStudent},
		}},
		AccessStore:     access,
		CourseStore:     stubCourseStore{},
		EnrollmentStore: stubEnrollmentStore{},
	}
	sessions = middleware.NewSessionStore()
	pdfExporter = pdf.NewFPDFExporter()
	SetEmailSender(&recordingSender{}, "Excel Courses <noreply@excelcourses.nz>", "support@excelcourses.nz")

	prevNow := timeNow
	timeNow = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = prevNow })

	mux := http.NewServeMux()
	registerRoutes(mux)
	return mux
}

func studentSession() middleware.Session {
	return middleware.Session{
		UserID:    7,
		Email:     "ana.silva@example.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Role:      user.RoleStudent,
	}
}

func getWithSession(mux *http.ServeMux, target string, sess middleware.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.ContextWithSession(req.Context(), sess))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestLessonWeek_RequiresSession(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{})
	req := httptest.NewRequest(http.MethodGet, "/lessons/week/1", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestLessonWeek_AllowsEnrolledStudent(t *testing.T) {
	access := &mockAccessStore{studentClass: 1, instructor: user.Profile{FirstName: "Pat", LastName: "Reed", Email: "pat.reed@excelcourses.nz"}}
	mux := setupWeb(t, access)

	w := getWithSession(mux, "/lessons/week/1?class=5", studentSession())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if access.called != "student_class" {
		t.Errorf("access intent = %q, want student_class", access.called)
	}
	body := w.Body.String()
	for _, want := range []string{"Week 1:", "Student: Ana Silva", "Instructor: Pat Reed", "Download PDF"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestLessonWeek_NamedClassDeniesWith403(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{})

	w := getWithSession(mux, "/lessons/week/1?class=5", studentSession())
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "do not have access") {
		t.Error("403 page missing denial message")
	}
}

func TestLessonWeek_UnscopedDenialRedirectsToDashboard(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{})

	w := getWithSession(mux, "/lessons/week/1", studentSession())
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/student" {
		t.Errorf("Location = %q, want /student", loc)
	}
}

func TestLessonWeek_StoreErrorDenies(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{studentClass: 9, err: errors.New("db down")})

	w := getWithSession(mux, "/lessons/week/1?class=5", studentSession())
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 when the count query fails", w.Code)
	}
}

func TestLessonWeek_InvalidClassFallsBackToProgramScope(t *testing.T) {
	tests := []string{"abc", "-3", "0", "2.5", ""}
	for _, raw := range tests {
		t.Run("class="+raw, func(t *testing.T) {
			access := &mockAccessStore{studentProgram: 1}
			mux := setupWeb(t, access)

			w := getWithSession(mux, "/lessons/week/1?class="+raw, studentSession())
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if access.called != "student_program" {
				t.Errorf("access intent = %q, want student_program", access.called)
			}
		})
	}
}

func TestLessonWeek_InstructorIntents(t *testing.T) {
	access := &mockAccessStore{instrClass: 1, instrProgram: 1}
	mux := setupWeb(t, access)
	sess := middleware.Session{UserID: 3, Email: "pat.reed@excelcourses.nz", FirstName: "Pat", Role: user.RoleInstructor}

	if w := getWithSession(mux, "/lessons/week/1?class=5", sess); w.Code != http.StatusOK {
		t.Fatalf("scoped status = %d, want 200", w.Code)
	}
	if access.called != "instructor_class" {
		t.Errorf("access intent = %q, want instructor_class", access.called)
	}

	if w := getWithSession(mux, "/lessons/week/1", sess); w.Code != http.StatusOK {
		t.Fatalf("unscoped status = %d, want 200", w.Code)
	}
	if access.called != "instructor_program" {
		t.Errorf("access intent = %q, want instructor_program", access.called)
	}
}

func TestLessonIndex_ListsCatalogWeeks(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{studentProgram: 1})

	w := getWithSession(mux, "/lessons", studentSession())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, def := range lesson.Weeks() {
		link := fmt.Sprintf("/lessons/week/%d", def.Week)
		if !strings.Contains(body, link) {
			t.Errorf("index missing link %q", link)
		}
		if !strings.Contains(body, def.Topic) {
			t.Errorf("index missing topic %q", def.Topic)
		}
	}
}

func TestStudentDashboard_ListsCatalogWeeks(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{})

	w := getWithSession(mux, "/student", studentSession())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Kia ora, Ana") {
		t.Error("dashboard missing greeting")
	}
	for _, def := range lesson.Weeks() {
		if !strings.Contains(body, fmt.Sprintf("/lessons/week/%d", def.Week)) {
			t.Errorf("dashboard missing link for week %d", def.Week)
		}
	}
}

func TestLessonWeek_UnknownWeek404(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{studentProgram: 1})

	if w := getWithSession(mux, "/lessons/week/99", studentSession()); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if w := getWithSession(mux, "/lessons/week/banana", studentSession()); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for non-numeric week", w.Code)
	}
}

func TestLessonWeek_PDFDownload(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{studentClass: 1})

	w := getWithSession(mux, "/lessons/week/1?class=5&download=pdf", studentSession())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment; filename=") || !strings.Contains(cd, "_2026-08-31.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q", cc)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Error("body is not a PDF")
	}
}

func TestLessonWeek_PDFRemediationWhenDisabled(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{studentClass: 1})
	pdfExporter = pdf.NewDisabledExporter()

	w := getWithSession(mux, "/lessons/week/1?class=5&download=pdf", studentSession())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 remediation page", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "PORTAL_PDF_ENGINE") {
		t.Error("remediation page missing setup instructions")
	}
	if !strings.Contains(body, "print") {
		t.Error("remediation page missing print fallback")
	}
}

func TestEmailHandout_SendsAttachment(t *testing.T) {
	mux := setupWeb(t, &mockAccessStore{studentClass: 1})
	sender := &recordingSender{}
	SetEmailSender(sender, "Excel Courses <noreply@excelcourses.nz>", "support@excelcourses.nz")

	req := httptest.NewRequest(http.MethodPost, "/lessons/week/1/email", strings.NewReader("class=5"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(middleware.ContextWithSession(req.Context(), studentSession()))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/lessons/week/1?sent=1&class=5" {
		t.Errorf("Location = %q", loc)
	}
	if sender.sent == nil {
		t.Fatal("no email was sent")
	}
	if got := sender.sent.To; len(got) != 1 || got[0] != "ana.silva@example.com" {
		t.Errorf("To = %v", got)
	}
	if len(sender.sent.Attachments) != 1 || sender.sent.Attachments[0].ContentType != "application/pdf" {
		t.Errorf("attachments = %+v", sender.sent.Attachments)
	}
}
