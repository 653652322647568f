// Package formdriver drives the CAC TAT contact form through playwright.
//
// It holds the selectors the page exposes and the fill-and-submit routine the
// browser scenarios share, plus a few DOM helpers for poking at elements the
// way a tester would from the devtools console.
package formdriver

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"
)

// Selectors of the form controls
const (
	FirstName      = "#firstName"
	LastName       = "#lastName"
	Email          = "#email"
	Phone          = "#phone"
	Product        = "#product"
	Radios         = `input[type="radio"]`
	Checkboxes     = `input[type="checkbox"]`
	EmailCheckbox  = "#email-checkbox"
	PhoneCheckbox  = "#phone-checkbox"
	OpenTextArea   = "#open-text-area"
	FileUpload     = "#file-upload"
	SubmitButton   = `button[type="submit"]`
	SuccessMessage = ".success"
	ErrorMessage   = ".error"
	PrivacyLink    = "#privacy a"
	Title          = "#title"
	Subtitle       = "#subtitle"
	Cat            = "#cat"
)

// Texts the page shows
const (
	PageTitle   = "Central de Atendimento ao Cliente TAT"
	SuccessText = "Mensagem enviada com sucesso."
	ErrorText   = "Valide os campos obrigatórios!"
	PrivacyText = "Não salvamos dados submetidos no formulário da aplicação CAC TAT."
)

// MessageTimeoutMs is how long the page keeps a success or error message visible
const MessageTimeoutMs = 3000

// FillMandatoryFieldsAndSubmit types first name, last name, email, phone and
// the free text, in that order, then clicks submit. It stops at the first
// browser error; whether the submission was accepted is for the caller to
// assert.
func FillMandatoryFieldsAndSubmit(page playwright.Page, firstName, lastName, email string, phone int, helpText string) error {
	steps := []struct {
		selector string
		value    string
	}{
		{FirstName, firstName},
		{LastName, lastName},
		{Email, email},
		{Phone, strconv.Itoa(phone)},
		{OpenTextArea, helpText},
	}

	for _, step := range steps {
		if err := page.Locator(step.selector).Fill(step.value); err != nil {
			return fmt.Errorf("failed to fill %s: %w", step.selector, err)
		}
	}

	if err := page.Locator(SubmitButton).Click(); err != nil {
		return fmt.Errorf("failed to click submit: %w", err)
	}
	return nil
}

// Show makes the element visible regardless of its stylesheet
func Show(l playwright.Locator) error {
	_, err := l.Evaluate("el => { el.style.display = 'block' }", nil)
	return err
}

// Hide hides the element
func Hide(l playwright.Locator) error {
	_, err := l.Evaluate("el => { el.style.display = 'none' }", nil)
	return err
}

// SetValue assigns the value property directly, skipping keyboard input
func SetValue(l playwright.Locator, value string) error {
	_, err := l.Evaluate("(el, v) => { el.value = v; el.dispatchEvent(new Event('input', { bubbles: true })) }", value)
	return err
}

// SetText replaces the element's text content
func SetText(l playwright.Locator, text string) error {
	_, err := l.Evaluate("(el, t) => { el.textContent = t }", text)
	return err
}

// RemoveAttribute drops an attribute from the element
func RemoveAttribute(l playwright.Locator, name string) error {
	_, err := l.Evaluate("(el, n) => el.removeAttribute(n)", name)
	return err
}

// SelectedFileName returns the name of the first file chosen in a file input,
// or "" when none is chosen
func SelectedFileName(l playwright.Locator) (string, error) {
	v, err := l.Evaluate("el => el.files.length ? el.files[0].name : ''", nil)
	if err != nil {
		return "", err
	}
	name, _ := v.(string)
	return name, nil
}

// DropFile simulates dragging a file onto the element: it builds a
// DataTransfer holding the file in the page and dispatches dragenter,
// dragover and drop with it.
func DropFile(page playwright.Page, l playwright.Locator, file playwright.InputFile) error {
	dataTransfer, err := page.EvaluateHandle(`([name, mimeType, bytes]) => {
		const dt = new DataTransfer();
		dt.items.add(new File([new Uint8Array(bytes)], name, { type: mimeType }));
		return dt;
	}`, []interface{}{file.Name, file.MimeType, toInts(file.Buffer)})
	if err != nil {
		return fmt.Errorf("failed to build data transfer: %w", err)
	}
	defer dataTransfer.Dispose()

	for _, event := range []string{"dragenter", "dragover", "drop"} {
		if err := l.DispatchEvent(event, map[string]interface{}{"dataTransfer": dataTransfer}); err != nil {
			return fmt.Errorf("failed to dispatch %s: %w", event, err)
		}
	}
	return nil
}

// toInts widens bytes so they serialize as a JSON number array
func toInts(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
