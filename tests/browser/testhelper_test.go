package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	emailPkg "lessonportal/internal/adapters/email"
	web "lessonportal/internal/adapters/http"
	"lessonportal/internal/adapters/http/middleware"
	pdfPkg "lessonportal/internal/adapters/pdf"
	"lessonportal/internal/adapters/storage"
	accessStore "lessonportal/internal/adapters/storage/access"
	courseStore "lessonportal/internal/adapters/storage/course"
	enrollmentStore "lessonportal/internal/adapters/storage/enrollment"
	userStore "lessonportal/internal/adapters/storage/user"
	"lessonportal/internal/application/orchestrators"
)

// Demo credentials created by ExecuteSeedDemo.
const (
	studentEmail    = "ana.silva@example.com"
	studentPassword = "Learn+excel1"

	outsiderEmail    = "sam.kahu@example.com"
	outsiderPassword = "Learn+excel2"

	instructorEmail    = "pat.reed@excelcourses.nz"
	instructorPassword = "Teach+excel1"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
}

// newTestApp creates a fully wired portal with a temp SQLite DB and starts an HTTP server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init test DB: %v", err)
	}

	stores := &web.Stores{
		UserStore:       userStore.NewSQLiteStore(db),
		AccessStore:     accessStore.NewSQLiteStore(db),
		CourseStore:     courseStore.NewSQLiteStore(db),
		EnrollmentStore: enrollmentStore.NewSQLiteStore(db),
	}

	seedDeps := orchestrators.SeedDemoDeps{
		UserStore:       stores.UserStore,
		CourseStore:     stores.CourseStore,
		EnrollmentStore: stores.EnrollmentStore,
	}
	if err := orchestrators.ExecuteSeedDemo(context.Background(), seedDeps); err != nil {
		t.Fatalf("failed to seed demo data: %v", err)
	}

	web.SetExporter(pdfPkg.NewFPDFExporter())
	web.SetEmailSender(emailPkg.NewNoopSender(), "Excel Courses <noreply@excelcourses.nz>", "support@excelcourses.nz")

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	mux := web.NewMux(stores, "")
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page, submits credentials, and waits for
// the expected dashboard.
func (a *testApp) login(t *testing.T, page playwright.Page, email, password, dashboard string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=email]").Fill(email); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(password); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+dashboard, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to %s: %v", dashboard, err)
	}
}
