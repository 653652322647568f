package services

import (
	"fmt"
	"log"

	"github.com/cactat/cactat/internal/models"
)

// DefaultRecentLimit is used by Recent when callers pass a non-positive limit
const DefaultRecentLimit = 20

// MaxRecentLimit caps how many submissions a single Recent call returns
const MaxRecentLimit = 100

// SubmissionRepository defines the interface for submission persistence
type SubmissionRepository interface {
	CreateSubmission(s *models.Submission) error
	GetSubmission(id string) (*models.Submission, error)
	ListSubmissions(limit int) ([]*models.Submission, error)
}

// SubmissionService handles contact form business logic
type SubmissionService interface {
	Submit(in models.SubmissionInput) (*models.Submission, error)
	Get(id string) (*models.Submission, error)
	Recent(limit int) ([]*models.Submission, error)
}

// SubmissionServiceImpl implements SubmissionService
type SubmissionServiceImpl struct {
	repo SubmissionRepository
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo SubmissionRepository) SubmissionService {
	return &SubmissionServiceImpl{
		repo: repo,
	}
}

// Submit validates the input and stores the resulting submission
func (s *SubmissionServiceImpl) Submit(in models.SubmissionInput) (*models.Submission, error) {
	submission, err := models.NewSubmission(in)
	if err != nil {
		return nil, fmt.Errorf("invalid submission: %w", err)
	}

	if err := s.repo.CreateSubmission(submission); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	log.Printf("Stored submission %s from %s", submission.ID, submission.Email)
	return submission, nil
}

// Get retrieves a submission by its ID
func (s *SubmissionServiceImpl) Get(id string) (*models.Submission, error) {
	submission, err := s.repo.GetSubmission(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

// Recent returns the latest submissions, newest first
func (s *SubmissionServiceImpl) Recent(limit int) ([]*models.Submission, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	submissions, err := s.repo.ListSubmissions(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return submissions, nil
}
