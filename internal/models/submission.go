package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is an entry of the page's product select
type Product struct {
	Value string
	Label string
}

// Products lists the selectable products in the order the page renders them.
// The page prepends a disabled "Selecione" placeholder, so Products[0] sits at
// option index 1.
var Products = []Product{
	{Value: "blog", Label: "Blog"},
	{Value: "cursos", Label: "Cursos"},
	{Value: "mentoria", Label: "Mentoria"},
	{Value: "youtube", Label: "YouTube"},
}

// SupportType is the kind of contact chosen through the radio group
type SupportType string

// Support types
const (
	SupportTypeHelp     SupportType = "ajuda"
	SupportTypePraise   SupportType = "elogio"
	SupportTypeFeedback SupportType = "feedback"
)

// SupportTypes lists the radio options in page order
var SupportTypes = []SupportType{SupportTypeHelp, SupportTypePraise, SupportTypeFeedback}

// Contact preferences offered as checkboxes
const (
	ContactByEmail = "email"
	ContactByPhone = "phone"
)

// Submission is a contact request that passed the page's validation
type Submission struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Product            string    `json:"product,omitempty"`
	SupportType        string    `json:"supportType"`
	ContactPreferences []string  `json:"contactPreferences,omitempty"`
	Message            string    `json:"message"`
	AttachmentName     string    `json:"attachmentName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// SubmissionInput is what the page posts once the form is valid
type SubmissionInput struct {
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Product            string   `json:"product"`
	SupportType        string   `json:"supportType"`
	ContactPreferences []string `json:"contactPreferences"`
	Message            string   `json:"message"`
	AttachmentName     string   `json:"attachmentName"`
}

// Domain errors
var (
	ErrMissingFirstName   = errors.New("first name is required")
	ErrMissingLastName    = errors.New("last name is required")
	ErrInvalidEmail       = errors.New("email must be a valid address")
	ErrMissingMessage     = errors.New("message is required")
	ErrMissingPhone       = errors.New("phone is required when contact by phone is selected")
	ErrInvalidPhone       = errors.New("phone must contain only digits")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrUnknownSupportType = errors.New("unknown support type")
)

// emailPattern matches what the page script accepts: JavaScript's \s also
// covers vertical tab, Unicode spaces and the byte order mark, which RE2's
// \s does not.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// PhonePattern is the phone rule shared with the page script
const PhonePattern = `^[0-9]+$`

var phonePattern = regexp.MustCompile(PhonePattern)

// NewSubmission validates the input and builds a Submission with a fresh ID
func NewSubmission(in SubmissionInput) (*Submission, error) {
	in = normalize(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	supportType := in.SupportType
	if supportType == "" {
		supportType = string(SupportTypeHelp)
	}

	return &Submission{
		ID:                 uuid.New().String(),
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		Product:            in.Product,
		SupportType:        supportType,
		ContactPreferences: in.ContactPreferences,
		Message:            in.Message,
		AttachmentName:     in.AttachmentName,
		CreatedAt:          time.Now(),
	}, nil
}

// Validate applies the mandatory field rules of the form
func Validate(in SubmissionInput) error {
	if in.FirstName == "" {
		return ErrMissingFirstName
	}
	if in.LastName == "" {
		return ErrMissingLastName
	}
	if !IsValidEmail(in.Email) {
		return ErrInvalidEmail
	}
	if in.Message == "" {
		return ErrMissingMessage
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return ErrInvalidPhone
	}
	if in.WantsPhoneContact() && in.Phone == "" {
		return ErrMissingPhone
	}
	if in.Product != "" && !IsKnownProduct(in.Product) {
		return ErrUnknownProduct
	}
	if in.SupportType != "" && !IsKnownSupportType(in.SupportType) {
		return ErrUnknownSupportType
	}
	return nil
}

// WantsPhoneContact reports whether the phone checkbox was checked, which
// makes the phone field mandatory
func (in SubmissionInput) WantsPhoneContact() bool {
	for _, p := range in.ContactPreferences {
		if p == ContactByPhone {
			return true
		}
	}
	return false
}

// IsValidEmail reports whether s passes the page's email check
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsKnownProduct reports whether value is one of the product options
func IsKnownProduct(value string) bool {
	for _, p := range Products {
		if p.Value == value {
			return true
		}
	}
	return false
}

// IsKnownSupportType reports whether value is one of the radio options
func IsKnownSupportType(value string) bool {
	for _, s := range SupportTypes {
		if string(s) == value {
			return true
		}
	}
	return false
}

// FullName returns first and last name joined by a space
func (s *Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}

func normalize(in SubmissionInput) SubmissionInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	return in
}
