package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type seedAuthor struct {
	name string
	bio  string
}

type seedBook struct {
	title         string
	author        string
	publishedYear int
	category      string
}

var authors = []seedAuthor{
	{"Ivo Andrić", "Yugoslav novelist, Nobel laureate 1961."},
	{"Ursula K. Le Guin", "American author of speculative fiction."},
	{"George Orwell", "English novelist and essayist."},
}

var books = []seedBook{
	{"The Bridge on the Drina", "Ivo Andrić", 1945, "historical"},
	{"The Left Hand of Darkness", "Ursula K. Le Guin", 1969, "science fiction"},
	{"A Wizard of Earthsea", "Ursula K. Le Guin", 1968, "fantasy"},
	{"Nineteen Eighty-Four", "George Orwell", 1949, "dystopia"},
}

func main() {
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

	authorIDs := make(map[string]int64, len(authors))
	for _, a := range authors {
		var id int64
		err := db.QueryRow(
			`INSERT INTO authors (name, bio) VALUES ($1, $2) RETURNING id`,
			a.name, a.bio,
		).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed author %q: %v", a.name, err)
		}
		authorIDs[a.name] = id
	}

	for _, b := range books {
		_, err := db.Exec(
			`INSERT INTO books (title, author_id, published_year, category) VALUES ($1, $2, $3, $4)`,
			b.title, authorIDs[b.author], b.publishedYear, b.category,
		)
		if err != nil {
			log.Fatalf("failed to seed book %q: %v", b.title, err)
		}
	}

	log.Printf("Seeded %d authors and %d books", len(authors), len(books))
}
