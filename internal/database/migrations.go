package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Schema creates the submissions table and its indexes
const Schema = `
	CREATE TABLE IF NOT EXISTS submissions (
		id UUID PRIMARY KEY,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(320) NOT NULL,
		phone VARCHAR(32),
		product VARCHAR(50),
		support_type VARCHAR(50) NOT NULL,
		contact_preferences TEXT[] NOT NULL DEFAULT '{}',
		message TEXT NOT NULL,
		attachment_name VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_email ON submissions(email);
	CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
	`

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Migrate applies Schema to db
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create submissions table: %w", err)
	}
	return nil
}
