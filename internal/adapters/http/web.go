package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"lessonportal/internal/adapters/email"
	"lessonportal/internal/adapters/http/middleware"
	"lessonportal/internal/adapters/pdf"
	accessStore "lessonportal/internal/adapters/storage/access"
	courseStore "lessonportal/internal/adapters/storage/course"
	enrollmentStore "lessonportal/internal/adapters/storage/enrollment"
	userStore "lessonportal/internal/adapters/storage/user"
)

// Stores holds all storage dependencies.
type Stores struct {
	UserStore       userStore.Store
	AccessStore     accessStore.Store
	CourseStore     courseStore.Store
	EnrollmentStore enrollmentStore.Store
}

// loadCSRFKey decodes the configured CSRF secret (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey(keyHex string) []byte {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PORTAL_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PORTAL_ENV") == "production" {
		log.Fatal("PORTAL_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set PORTAL_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global PDF exporter (set by SetExporter)
var pdfExporter pdf.Exporter = pdf.NewDisabledExporter()

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// SetExporter sets the global PDF exporter for handout downloads.
func SetExporter(e pdf.Exporter) {
	pdfExporter = e
}

// NewMux wires HTTP handlers for the portal. csrfKeyHex is the
// hex-encoded CSRF secret from configuration; empty means generate one.
func NewMux(s *Stores, csrfKeyHex string) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("PORTAL_ENV") == "production"

	mux := http.NewServeMux()
	registerRoutes(mux)

	csrfKey := loadCSRFKey(csrfKeyHex)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RequestLog -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.RequestLog,
	)
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("GET /login", handleLoginPage)
	mux.HandleFunc("POST /login", handleLoginSubmit)
	mux.HandleFunc("POST /logout", handleLogout)
	mux.HandleFunc("GET /student", handleStudentDashboard)
	mux.HandleFunc("GET /instructor", handleInstructorDashboard)
	mux.HandleFunc("GET /lessons", handleLessonIndex)
	mux.HandleFunc("GET /lessons/week/{week}", handleLessonWeek)
	mux.HandleFunc("POST /lessons/week/{week}/email", handleEmailHandout)
}
