package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/cactat/cactat/internal/models"
	"github.com/cactat/cactat/internal/web"
)

// Page titles shown by the form
const (
	PageTitle    = "Central de Atendimento ao Cliente TAT"
	PageHeading  = "CAC TAT"
	PageSubtitle = "Forneça o máximo de informações, isso nos ajudará a resolver o seu problema."
)

// Option is a value/label pair rendered as a select option or radio button
type Option struct {
	Value string
	Label string
}

// FormPage represents the data for the form template
type FormPage struct {
	Title          string
	Heading        string
	Subtitle       string
	Products       []Option
	SupportTypes   []Option
	SubmissionsURL string
}

var supportTypeLabels = map[models.SupportType]string{
	models.SupportTypeHelp:     "Ajuda",
	models.SupportTypePraise:   "Elogio",
	models.SupportTypeFeedback: "Feedback",
}

// NewFormPage builds the page data from the model catalog
func NewFormPage(submissionsURL string) FormPage {
	page := FormPage{
		Title:          PageTitle,
		Heading:        PageHeading,
		Subtitle:       PageSubtitle,
		SubmissionsURL: submissionsURL,
	}
	for _, p := range models.Products {
		page.Products = append(page.Products, Option{Value: p.Value, Label: p.Label})
	}
	for _, s := range models.SupportTypes {
		page.SupportTypes = append(page.SupportTypes, Option{Value: string(s), Label: supportTypeLabels[s]})
	}
	return page
}

// FormHandler handles the contact form page requests
type FormHandler struct {
	template *template.Template
	page     FormPage
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(tmpl *template.Template, page FormPage) *FormHandler {
	return &FormHandler{
		template: tmpl,
		page:     page,
	}
}

// ServeHTTP handles GET / and GET /index.html
func (h *FormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.ExecuteTemplate(w, web.IndexTemplate, h.page); err != nil {
		log.Printf("Error rendering form: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
