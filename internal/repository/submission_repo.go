package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cactat/cactat/internal/database"
	"github.com/cactat/cactat/internal/models"
	"github.com/lib/pq"
)

// ErrNotFound is returned when no submission matches the lookup
var ErrNotFound = errors.New("submission not found")

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{
		db: database.DB,
	}
}

// NewSubmissionRepositoryWithDB creates a new submission repository with a specific database connection
func NewSubmissionRepositoryWithDB(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

// CreateSubmission stores a new submission
func (r *SubmissionRepository) CreateSubmission(s *models.Submission) error {
	query := `
		INSERT INTO submissions (id, first_name, last_name, email, phone, product,
			support_type, contact_preferences, message, attachment_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	prefs := s.ContactPreferences
	if prefs == nil {
		prefs = []string{}
	}

	_, err := r.db.Exec(query,
		s.ID,
		s.FirstName,
		s.LastName,
		s.Email,
		nullable(s.Phone),
		nullable(s.Product),
		s.SupportType,
		pq.Array(prefs),
		s.Message,
		nullable(s.AttachmentName),
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

const selectColumns = `
	SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(product, ''),
	       support_type, contact_preferences, message, COALESCE(attachment_name, ''), created_at
	FROM submissions
`

// GetSubmission retrieves a submission by its ID
func (r *SubmissionRepository) GetSubmission(id string) (*models.Submission, error) {
	row := r.db.QueryRow(selectColumns+" WHERE id = $1", id)

	s, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return s, nil
}

// ListSubmissions returns the most recent submissions, newest first
func (r *SubmissionRepository) ListSubmissions(limit int) ([]*models.Submission, error) {
	rows, err := r.db.Query(selectColumns+" ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return submissions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*models.Submission, error) {
	s := &models.Submission{}
	var prefs pq.StringArray
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Product,
		&s.SupportType,
		&prefs,
		&s.Message,
		&s.AttachmentName,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(prefs) > 0 {
		s.ContactPreferences = []string(prefs)
	}
	return s, nil
}

func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
