package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"quantor/domain"
	"quantor/logger"
	"quantor/service"
	"quantor/view"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

var fieldLabels = map[domain.Field]string{
	domain.FieldDemand:      "Annual demand (D)",
	domain.FieldOrderCost:   "Ordering cost per order (S)",
	domain.FieldHoldingCost: "Holding cost per unit (H)",
}

type pageInput struct {
	Name    string
	Label   string
	Value   string
	Invalid bool
}

type pageData struct {
	view.Snapshot
	Inputs       []pageInput
	Style        template.CSS
	ToastSeconds float64
}

// PageHandler serves the HTML form and its form-post actions.
type PageHandler struct {
	page  *view.Page
	form  *service.FormController
	theme *service.ThemeService
	delay float64
}

func NewPageHandler(page *view.Page, form *service.FormController, theme *service.ThemeService, toastSeconds float64) *PageHandler {
	return &PageHandler{page: page, form: form, theme: theme, delay: toastSeconds}
}

// styleVariables renders CSS custom properties. Values come from
// domain.Appearance, never from user input.
func styleVariables(a domain.Appearance) template.CSS {
	var b strings.Builder
	for i, v := range a.Variables {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(v.Name + ": " + v.Value + ";")
	}
	return template.CSS(b.String())
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := h.page.Snapshot()
	data := pageData{
		Snapshot:     snap,
		Style:        styleVariables(snap.Appearance),
		ToastSeconds: h.delay,
	}
	for _, f := range domain.Fields {
		data.Inputs = append(data.Inputs, pageInput{
			Name:    string(f),
			Label:   fieldLabels[f],
			Value:   snap.Values[f],
			Invalid: snap.Invalid[f],
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logger.ErrorWithErr(r.Context(), "error rendering page", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	_, err := h.form.Submit(r.Context(), service.RawInputs{
		Demand:      r.PostForm.Get(string(domain.FieldDemand)),
		OrderCost:   r.PostForm.Get(string(domain.FieldOrderCost)),
		HoldingCost: r.PostForm.Get(string(domain.FieldHoldingCost)),
	})
	var inputErr *service.InvalidInputError
	if err != nil && !errors.As(err, &inputErr) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *PageHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.form.Reset(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *PageHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := h.theme.Toggle(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *PageHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.form.Dismiss(r.PathValue("id"))
	redirectHome(w, r)
}

// FieldActivity clears a field's invalid marker. Browsers call it on every
// input and focus event.
func (h *PageHandler) FieldActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	field, ok := domain.ParseField(r.PathValue("field"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.form.FieldActivity(field)
	w.WriteHeader(http.StatusNoContent)
}
