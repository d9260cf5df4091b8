package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"quantor/domain"
	"quantor/service"
)

// EOQHandler serves the JSON API.
type EOQHandler struct {
	form  *service.FormController
	theme *service.ThemeService
}

func NewEOQHandler(form *service.FormController, theme *service.ThemeService) *EOQHandler {
	return &EOQHandler{form: form, theme: theme}
}

type calculateResponse struct {
	Result        domain.ComputationResult `json:"result"`
	EOQText       string                   `json:"eoqText"`
	TotalCostText string                   `json:"totalCostText"`
	Entry         *domain.BehaviorLogEntry `json:"entry,omitempty"`
}

type themeResponse struct {
	Theme     domain.Theme `json:"theme"`
	IconSrc   string       `json:"iconSrc"`
	HaloClass string       `json:"haloClass"`
}

func newThemeResponse(t domain.Theme) themeResponse {
	a := t.Appearance()
	return themeResponse{Theme: t, IconSrc: a.IconSrc, HaloClass: a.HaloClass}
}

func (h *EOQHandler) CalculateEOQ(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.OrderParameters
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.form.SubmitParameters(r.Context(), input)
	var inputErr *service.InvalidInputError
	if errors.As(err, &inputErr) {
		fields := make([]string, len(inputErr.Fields))
		for i, f := range inputErr.Fields {
			fields[i] = string(f)
		}
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: inputErr.Message, Fields: fields})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, calculateResponse{
		Result:        outcome.Result,
		EOQText:       service.EOQLine(outcome.Result.EOQ),
		TotalCostText: service.TotalCostLine(outcome.Result.TotalAnnualCost),
		Entry:         outcome.Entry,
	})
}

// Log returns the session log on GET and resets the form on DELETE.
func (h *EOQHandler) Log(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, h.form.Log())
	case http.MethodDelete:
		if err := h.form.Reset(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *EOQHandler) Theme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	theme, err := h.theme.Current(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, newThemeResponse(theme))
}

func (h *EOQHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	theme, err := h.theme.Toggle(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, newThemeResponse(theme))
}
