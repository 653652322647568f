// Package fakedata generates throwaway values for filling the contact form:
// person names, email addresses, phone numbers and lorem ipsum text.
// All randomness comes from crypto/rand.
package fakedata

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Phone bounds used by the form scenarios
const (
	MinPhone = 111111111
	MaxPhone = 999999999
)

// Person is one generated contact
type Person struct {
	FirstName string
	LastName  string
	Email     string
	Phone     int
	HelpText  string
}

// Generator produces random form data.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Person generates a complete contact whose email is derived from the name.
func (g *Generator) Person() Person {
	first, last := g.FirstName(), g.LastName()
	return Person{
		FirstName: first,
		LastName:  last,
		Email:     g.emailFor(first, last),
		Phone:     g.Phone(MinPhone, MaxPhone),
		HelpText:  g.Paragraph(),
	}
}

// FirstName returns a random first name.
func (g *Generator) FirstName() string {
	return pick(firstNames)
}

// LastName returns a random last name.
func (g *Generator) LastName() string {
	return pick(lastNames)
}

// Email returns a random address for a random person.
func (g *Generator) Email() string {
	return g.emailFor(g.FirstName(), g.LastName())
}

// Phone returns a random number in [min, max].
func (g *Generator) Phone(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + randIntn(max-min+1)
}

// Word returns a single lorem ipsum word. It never contains '@', so it is
// never a valid email address.
func (g *Generator) Word() string {
	return pick(loremWords)
}

// Words returns n lorem ipsum words.
func (g *Generator) Words(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = g.Word()
	}
	return words
}

// Sentence returns a capitalized sentence of 4 to 12 words ending in a period.
func (g *Generator) Sentence() string {
	s := strings.Join(g.Words(4+randIntn(9)), " ")
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r) + "."
}

// Paragraph returns 3 to 6 sentences.
func (g *Generator) Paragraph() string {
	sentences := make([]string, 3+randIntn(4))
	for i := range sentences {
		sentences[i] = g.Sentence()
	}
	return strings.Join(sentences, " ")
}

// emailFor builds an address like maria.silva42@example.com.
func (g *Generator) emailFor(first, last string) string {
	local := slug(first) + "." + slug(last) + fmt.Sprintf("%02d", randIntn(100))
	return local + "@" + pick(emailDomains)
}

// slug lowercases s and drops anything outside a-z.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(foldAccents(s)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
	"Á", "A", "Â", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ç", "C",
)

func foldAccents(s string) string {
	return accentFold.Replace(s)
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
