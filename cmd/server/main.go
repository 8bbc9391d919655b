package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	web "coursedesk/internal/adapters/http"
	"coursedesk/internal/adapters/http/perf"
	"coursedesk/internal/adapters/storage"
	accountStore "coursedesk/internal/adapters/storage/account"
	courseStore "coursedesk/internal/adapters/storage/course"
	registrationStore "coursedesk/internal/adapters/storage/registration"
	"coursedesk/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("COURSEDESK_DB", "coursedesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		CourseStore:       courseStore.NewSQLiteStore(timedDB),
		RegistrationStore: registrationStore.NewSQLiteStore(timedDB),
		AccountStore:      acctStore,
	}

	// Seed the admin account if no accounts exist
	adminEmail := envOrDefault("COURSEDESK_ADMIN_EMAIL", "admin@coursedesk.local")
	adminPassword := envOrDefault("COURSEDESK_ADMIN_PASSWORD", "change me")
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Create HTTP handler with middleware (pass collector for timing)
	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("COURSEDESK_ADDR", ":8080")
	log.Printf("CourseDesk %s starting on %s (env=%s)", version, addr, envOrDefault("COURSEDESK_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
