package fakedata

import (
	"regexp"
	"strings"
	"testing"

	"github.com/cactat/cactat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson(t *testing.T) {
	g := New()
	p := g.Person()

	assert.NotEmpty(t, p.FirstName)
	assert.NotEmpty(t, p.LastName)
	assert.True(t, models.IsValidEmail(p.Email), "email %q should pass the form check", p.Email)
	assert.GreaterOrEqual(t, p.Phone, MinPhone)
	assert.LessOrEqual(t, p.Phone, MaxPhone)
	assert.NotEmpty(t, p.HelpText)
}

func TestEmailIsASCII(t *testing.T) {
	g := New()
	re := regexp.MustCompile(`^[a-z]+\.[a-z]+\d{2}@[a-z.]+$`)

	for range 200 {
		email := g.Email()
		require.Regexp(t, re, email)
	}
}

func TestSlugFoldsAccents(t *testing.T) {
	assert.Equal(t, "joao", slug("João"))
	assert.Equal(t, "vinicius", slug("Vinícius"))
	assert.Equal(t, "julia", slug("Júlia"))
}

func TestPhoneBounds(t *testing.T) {
	g := New()

	for range 500 {
		n := g.Phone(10, 12)
		require.GreaterOrEqual(t, n, 10)
		require.LessOrEqual(t, n, 12)
	}

	// swapped bounds are tolerated
	n := g.Phone(5, 1)
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 5)

	assert.Equal(t, 7, g.Phone(7, 7))
}

func TestWordIsNeverAnEmail(t *testing.T) {
	g := New()

	for range 200 {
		w := g.Word()
		require.NotContains(t, w, "@")
		require.False(t, models.IsValidEmail(w))
	}
}

func TestSentenceAndParagraph(t *testing.T) {
	g := New()

	s := g.Sentence()
	assert.True(t, strings.HasSuffix(s, "."))
	assert.Regexp(t, `^[A-Z]`, s)
	words := strings.Fields(s)
	assert.GreaterOrEqual(t, len(words), 4)
	assert.LessOrEqual(t, len(words), 12)

	p := g.Paragraph()
	n := strings.Count(p, ".")
	assert.GreaterOrEqual(t, n, 3)
	assert.LessOrEqual(t, n, 6)
}
