// Package participants provides HTTP handlers, validation and business
// logic for managing participant records.
package participants

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bkuzmin/participant-registry/internal/domain"
	"github.com/bkuzmin/participant-registry/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the participants module.
type Handler struct {
	service   *Service
	validator *Validator
}

// NewHandler creates a new participants handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: NewValidator(),
	}
}

// RegisterRoutes registers all participant routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/participants", func(r chi.Router) {
		r.Get("/", h.ListParticipants)
		r.Post("/add", h.CreateParticipant)
		r.Get("/details", h.ListSummaries)
		r.Get("/details/{email}", h.GetDetails)
		r.Get("/work/{email}", h.GetWork)
		r.Get("/home/{email}", h.GetHome)
		r.Put("/{email}", h.UpdateParticipant)
		r.Delete("/{email}", h.DeleteParticipant)
	})
}

// ParticipantResponse echoes a stored record in the nested body shape.
type ParticipantResponse struct {
	Participant PersonalSection `json:"participant"`
	Work        WorkSection     `json:"work"`
	Home        HomeSection     `json:"home"`
}

// PersonalSection is the participant facet of a response body.
type PersonalSection struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Dob       string `json:"dob"`
}

// WorkSection is the work facet of a response body.
type WorkSection struct {
	CompanyName string  `json:"companyname"`
	Salary      float64 `json:"salary"`
	Currency    string  `json:"currency"`
}

// HomeSection is the home facet of a response body.
type HomeSection struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

func toResponse(p domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		Participant: PersonalSection{
			Email:     p.Email,
			Firstname: p.Firstname,
			Lastname:  p.Lastname,
			Dob:       p.Dob,
		},
		Work: WorkSection{
			CompanyName: p.CompanyName,
			Salary:      p.Salary,
			Currency:    p.Currency,
		},
		Home: HomeSection{
			Country: p.Country,
			City:    p.City,
		},
	}
}

// CreateParticipant handles POST /participants/add.
func (h *Handler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if details := h.validator.Validate(&req); details != nil {
		httputil.ValidationError(w, details)
		return
	}

	p := req.ToDomain()
	if err := h.service.Create(r.Context(), p); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			httputil.Error(w, http.StatusBadRequest,
				fmt.Sprintf("participant with email %s already exists", p.Email))
			return
		}
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, toResponse(*p))
}

// ListParticipants handles GET /participants.
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	result := make([]ParticipantResponse, 0, len(list))
	for _, p := range list {
		result = append(result, toResponse(p))
	}
	httputil.JSON(w, http.StatusOK, result)
}

// ListSummaries handles GET /participants/details.
func (h *Handler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListSummaries(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, summaries)
}

// GetDetails handles GET /participants/details/{email}.
func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	details, err := h.service.GetDetails(r.Context(), email)
	if err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]any{"participant": details})
}

// GetWork handles GET /participants/work/{email}.
func (h *Handler) GetWork(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	work, err := h.service.GetWork(r.Context(), email)
	if err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]any{"work": work})
}

// GetHome handles GET /participants/home/{email}.
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	home, err := h.service.GetHome(r.Context(), email)
	if err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]any{"home": home})
}

// UpdateParticipant handles PUT /participants/{email}. The body is
// re-validated in full and its email must match the path email.
func (h *Handler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req ParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if details := h.validator.Validate(&req); details != nil {
		httputil.ValidationError(w, details)
		return
	}

	p := req.ToDomain()
	if err := h.service.Update(r.Context(), email, p); err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrEmailMismatch, Status: http.StatusBadRequest},
			{Error: ErrParticipantNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, toResponse(*p))
}

// DeleteParticipant handles DELETE /participants/{email}.
func (h *Handler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.service.Delete(r.Context(), email); err != nil {
		h.handleLookupError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("participant %s deleted", email),
	})
}

func (h *Handler) handleLookupError(w http.ResponseWriter, r *http.Request, err error) {
	httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
		{Error: ErrParticipantNotFound, Status: http.StatusNotFound},
	})
}
