package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/cactat/cactat/internal/web"
)

// PrivacyHandler serves the privacy policy page linked from the form
type PrivacyHandler struct {
	template *template.Template
	page     FormPage
}

// NewPrivacyHandler creates a new privacy handler
func NewPrivacyHandler(tmpl *template.Template, page FormPage) *PrivacyHandler {
	return &PrivacyHandler{
		template: tmpl,
		page:     page,
	}
}

// ServeHTTP handles GET /privacy.html
func (h *PrivacyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.ExecuteTemplate(w, web.PrivacyTemplate, h.page); err != nil {
		log.Printf("Error rendering privacy page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
