package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cactat/cactat/internal/models"
	"github.com/cactat/cactat/internal/repository"
)

func TestPrintSubmissions(t *testing.T) {
	var out bytes.Buffer
	submissions := []*models.Submission{
		{
			FirstName:   "Ana",
			LastName:    "Lima",
			Email:       "ana@example.com",
			Product:     "youtube",
			SupportType: "feedback",
			CreatedAt:   time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
		},
	}

	if err := printSubmissions(&out, submissions); err != nil {
		t.Fatalf("printSubmissions() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out.String())
	}
	for _, want := range []string{"2026-10-17 09:30", "Ana Lima", "ana@example.com", "youtube", "feedback"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("expected row to contain %q, got %q", want, lines[1])
		}
	}
}

func TestOpenRepository_MemoryFallback(t *testing.T) {
	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOSTNAME"} {
		t.Setenv(key, "")
	}

	repo, closeRepo, err := openRepository(false)
	if err != nil {
		t.Fatalf("openRepository() error = %v", err)
	}
	defer closeRepo()

	if _, ok := repo.(*repository.MemoryRepository); !ok {
		t.Errorf("expected memory repository, got %T", repo)
	}
}

func TestOpenRepository_RequiresDatabase(t *testing.T) {
	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOSTNAME"} {
		t.Setenv(key, "")
	}

	if _, _, err := openRepository(true); err == nil {
		t.Error("expected error when a database is required but not configured")
	}
}

func TestCommands(t *testing.T) {
	if ServeCommand().Name != "serve" {
		t.Error("expected serve command")
	}
	if SubmissionsCommand().Name != "submissions" {
		t.Error("expected submissions command")
	}
}
