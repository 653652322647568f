package services

import (
	"errors"
	"testing"

	"github.com/cactat/cactat/internal/models"
)

// MockSubmissionRepository is a mock implementation of SubmissionRepository for testing
type MockSubmissionRepository struct {
	CreateSubmissionFunc func(*models.Submission) error
	GetSubmissionFunc    func(string) (*models.Submission, error)
	ListSubmissionsFunc  func(int) ([]*models.Submission, error)
}

func (m *MockSubmissionRepository) CreateSubmission(s *models.Submission) error {
	if m.CreateSubmissionFunc != nil {
		return m.CreateSubmissionFunc(s)
	}
	return nil
}

func (m *MockSubmissionRepository) GetSubmission(id string) (*models.Submission, error) {
	if m.GetSubmissionFunc != nil {
		return m.GetSubmissionFunc(id)
	}
	return &models.Submission{ID: id}, nil
}

func (m *MockSubmissionRepository) ListSubmissions(limit int) ([]*models.Submission, error) {
	if m.ListSubmissionsFunc != nil {
		return m.ListSubmissionsFunc(limit)
	}
	return nil, nil
}

func validInput() models.SubmissionInput {
	return models.SubmissionInput{
		FirstName: "Pedro",
		LastName:  "Alves",
		Email:     "pedro@example.com",
		Phone:     "123456789",
		Message:   "Gostaria de saber mais sobre a mentoria.",
	}
}

func TestSubmissionService_Submit(t *testing.T) {
	invalidEmail := validInput()
	invalidEmail.Email = "lorem"

	tests := []struct {
		name       string
		input      models.SubmissionInput
		mockError  error
		wantErr    bool
		wantDomain error
		wantStored bool
	}{
		{
			name:       "successful submission",
			input:      validInput(),
			wantStored: true,
		},
		{
			name:       "invalid email is rejected before storage",
			input:      invalidEmail,
			wantErr:    true,
			wantDomain: models.ErrInvalidEmail,
		},
		{
			name:       "repository error",
			input:      validInput(),
			mockError:  errors.New("database error"),
			wantErr:    true,
			wantStored: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := false
			mockRepo := &MockSubmissionRepository{
				CreateSubmissionFunc: func(s *models.Submission) error {
					stored = true
					if s.ID == "" {
						t.Error("Submission ID should not be empty")
					}
					if s.Email != tt.input.Email {
						t.Errorf("Expected email %s, got %s", tt.input.Email, s.Email)
					}
					return tt.mockError
				},
			}

			service := NewSubmissionService(mockRepo)
			submission, err := service.Submit(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantDomain != nil && !errors.Is(err, tt.wantDomain) {
				t.Errorf("expected %v in error chain, got %v", tt.wantDomain, err)
			}
			if stored != tt.wantStored {
				t.Errorf("expected stored=%v, got %v", tt.wantStored, stored)
			}
			if !tt.wantErr && submission == nil {
				t.Error("Expected submission to be returned")
			}
		})
	}
}

func TestSubmissionService_Get(t *testing.T) {
	mockRepo := &MockSubmissionRepository{
		GetSubmissionFunc: func(id string) (*models.Submission, error) {
			if id == "missing" {
				return nil, errors.New("submission not found")
			}
			return &models.Submission{ID: id, Email: "found@example.com"}, nil
		},
	}
	service := NewSubmissionService(mockRepo)

	s, err := service.Get("abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.Email != "found@example.com" {
		t.Errorf("unexpected submission %+v", s)
	}

	if _, err := service.Get("missing"); err == nil {
		t.Error("expected error for missing submission")
	}
}

func TestSubmissionService_Recent(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default for zero", 0, DefaultRecentLimit},
		{"default for negative", -5, DefaultRecentLimit},
		{"explicit limit", 7, 7},
		{"capped limit", 1000, MaxRecentLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			mockRepo := &MockSubmissionRepository{
				ListSubmissionsFunc: func(limit int) ([]*models.Submission, error) {
					gotLimit = limit
					return nil, nil
				},
			}

			list, err := NewSubmissionService(mockRepo).Recent(tt.limit)
			if err != nil {
				t.Fatalf("Recent() error = %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, gotLimit)
			}
			if list == nil {
				t.Error("expected empty slice, got nil")
			}
		})
	}
}
