package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "lessonportal/internal/adapters/email"
	web "lessonportal/internal/adapters/http"
	pdfPkg "lessonportal/internal/adapters/pdf"
	"lessonportal/internal/adapters/storage"
	accessStore "lessonportal/internal/adapters/storage/access"
	courseStore "lessonportal/internal/adapters/storage/course"
	enrollmentStore "lessonportal/internal/adapters/storage/enrollment"
	userStore "lessonportal/internal/adapters/storage/user"
	"lessonportal/internal/application/orchestrators"
	"lessonportal/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Wrap DB with slow-query instrumentation
	timedDB := storage.NewTimedDB(db)

	stores := &web.Stores{
		UserStore:       userStore.NewSQLiteStore(timedDB),
		AccessStore:     accessStore.NewSQLiteStore(timedDB),
		CourseStore:     courseStore.NewSQLiteStore(timedDB),
		EnrollmentStore: enrollmentStore.NewSQLiteStore(timedDB),
	}

	// Seed a demo program on an empty database
	seedDeps := orchestrators.SeedDemoDeps{
		UserStore:       stores.UserStore,
		CourseStore:     stores.CourseStore,
		EnrollmentStore: stores.EnrollmentStore,
	}
	if err := orchestrators.ExecuteSeedDemo(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	// Configure PDF engine
	switch cfg.PdfEngine {
	case "fpdf":
		web.SetExporter(pdfPkg.NewFPDFExporter())
		log.Println("PDF engine configured (fpdf)")
	default:
		web.SetExporter(pdfPkg.NewDisabledExporter())
		log.Println("PDF engine disabled — handout downloads will offer remediation")
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), cfg.EmailFrom, cfg.EmailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom, cfg.EmailReply)
		if cfg.IsProduction() {
			log.Println("WARNING: PORTAL_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set PORTAL_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux(stores, cfg.CSRFKey)

	log.Printf("Lesson portal %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
