package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cactat/cactat/internal/models"
	"github.com/cactat/cactat/internal/repository"
	"github.com/cactat/cactat/internal/services"
)

// maxBodyBytes bounds the JSON body accepted for a submission
const maxBodyBytes = 64 << 10

// SubmissionHandler handles the submissions API
type SubmissionHandler struct {
	service services.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP dispatches POST (create) and GET (list recent). When the route
// carries an {id} path value only GET (fetch one) is served.
func (h *SubmissionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if id := r.PathValue("id"); id != "" {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.get(w, id)
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SubmissionHandler) create(w http.ResponseWriter, r *http.Request) {
	var in models.SubmissionInput
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendErrorResponse(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	submission, err := h.service.Submit(in)
	if err != nil {
		if verr := validationError(err); verr != nil {
			sendErrorResponse(w, verr.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error storing submission: %v", err)
		sendErrorResponse(w, "Failed to store submission", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusCreated, submission)
}

func (h *SubmissionHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			sendErrorResponse(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	submissions, err := h.service.Recent(limit)
	if err != nil {
		log.Printf("Error listing submissions: %v", err)
		sendErrorResponse(w, "Failed to list submissions", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, submissions)
}

func (h *SubmissionHandler) get(w http.ResponseWriter, id string) {
	submission, err := h.service.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		sendErrorResponse(w, "Submission not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error getting submission %s: %v", id, err)
		sendErrorResponse(w, "Failed to get submission", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, submission)
}

var validationErrors = []error{
	models.ErrMissingFirstName,
	models.ErrMissingLastName,
	models.ErrInvalidEmail,
	models.ErrMissingMessage,
	models.ErrMissingPhone,
	models.ErrInvalidPhone,
	models.ErrUnknownProduct,
	models.ErrUnknownSupportType,
}

// validationError returns the domain error in err's chain, if any
func validationError(err error) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
