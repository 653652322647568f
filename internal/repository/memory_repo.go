package repository

import (
	"sync"

	"github.com/cactat/cactat/internal/models"
)

// MemoryRepository keeps submissions in process memory. It backs the server
// when no Postgres is configured, which is how the browser suite runs it.
type MemoryRepository struct {
	mu          sync.Mutex
	submissions []*models.Submission
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// CreateSubmission stores a copy of s
func (r *MemoryRepository) CreateSubmission(s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *s
	r.submissions = append(r.submissions, &c)
	return nil
}

// GetSubmission retrieves a submission by its ID
func (r *MemoryRepository) GetSubmission(id string) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.submissions {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// ListSubmissions returns up to limit submissions, newest first
func (r *MemoryRepository) ListSubmissions(limit int) ([]*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.Submission
	for i := len(r.submissions) - 1; i >= 0 && len(out) < limit; i-- {
		c := *r.submissions[i]
		out = append(out, &c)
	}
	return out, nil
}
