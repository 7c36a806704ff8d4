package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Bootstraps an admin credential. Upserts by username so rerunning rotates
// the password instead of failing.
func main() {
	username := flag.String("username", "admin", "admin username")
	pass := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *pass == "" {
		log.Fatal("-password is required")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*pass), 10)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	query := `
	INSERT INTO users (username, password, role, created_at, updated_at)
	VALUES ($1, $2, 'admin', $3, $3)
	ON CONFLICT (username) DO UPDATE SET
	  password = EXCLUDED.password,
	  role = 'admin',
	  updated_at = EXCLUDED.updated_at
	RETURNING id
	`

	var id int64
	if err := db.QueryRow(query, *username, string(hash), time.Now()).Scan(&id); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("Admin user ready: username=%s id=%d", *username, id)
}
