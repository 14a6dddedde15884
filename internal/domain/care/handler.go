package care

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/platform/httpjson"
	"horse-medical-records/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, horsesSvc *horses.Service, n notify.Notifier) {
	r.Route("/horses/{horseID}/care", func(cr chi.Router) {
		cr.Get("/", getCareHandler(svc, horsesSvc))
		cr.Get("/{category}", listCategoryHandler(svc, horsesSvc))
		cr.Post("/{category}", createCareHandler(svc, horsesSvc, n))
	})
}

// Campos de fecha que la UI manda como YYYY-MM-DD.
var dateFields = []string{"date", "nextDue", "endDate"}

// categoryLabels para los mensajes al usuario.
var categoryLabels = map[Category]string{
	CategoryVaccinations: "Vacunación",
	CategoryDeworming:    "Desparasitación",
	CategoryMedications:  "Medicación",
	CategoryAllergies:    "Alergia",
	CategoryInjuries:     "Lesión",
	CategorySurgeries:    "Cirugía",
	CategoryDental:       "Odontología",
	CategoryFarrier:      "Herraje",
	CategoryImaging:      "Imagen",
}

// getCareHandler godoc
// @Summary Cuidados médicos
// @Description Devuelve las nueve categorías (siempre presentes), cada una por fecha descendente.
// @Tags care
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Success 200 {object} Book
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID}/care [get]
func getCareHandler(svc *Service, horsesSvc *horses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		if _, err := horsesSvc.GetByID(r.Context(), horseID); err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}
		httpjson.Write(w, http.StatusOK, svc.History(r.Context(), horseID))
	}
}

// listCategoryHandler godoc
// @Summary Cuidados de una categoría
// @Tags care
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Param category path string true "Categoría" Enums(vaccinations,deworming,medications,allergies,injuries,surgeries,dental,farrier,imaging)
// @Success 200 {array} object
// @Failure 400 {string} string "unknown care category"
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID}/care/{category} [get]
func listCategoryHandler(svc *Service, horsesSvc *horses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		if _, err := horsesSvc.GetByID(r.Context(), horseID); err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}
		c, ok := ParseCategory(chi.URLParam(r, "category"))
		if !ok {
			http.Error(w, ErrUnknownCategory.Error(), http.StatusBadRequest)
			return
		}
		sorted := svc.History(r.Context(), horseID)
		httpjson.Write(w, http.StatusOK, sorted.Entries(c))
	}
}

// createCareHandler godoc
// @Summary Registrar cuidado médico
// @Description Agrega un registro a una categoría. name y date son obligatorios; el resto de campos depende de la categoría.
// @Tags care
// @Accept json
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Param category path string true "Categoría" Enums(vaccinations,deworming,medications,allergies,injuries,surgeries,dental,farrier,imaging)
// @Param payload body object true "Registro de la categoría"
// @Success 201 {object} object
// @Failure 400 {string} string "invalid json / unknown care category / campos obligatorios"
// @Failure 404 {string} string "horse not found"
// @Failure 500 {string} string "internal error"
// @Router /horses/{horseID}/care/{category} [post]
func createCareHandler(svc *Service, horsesSvc *horses.Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		h, err := horsesSvc.GetByID(r.Context(), horseID)
		if err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}

		c, ok := ParseCategory(chi.URLParam(r, "category"))
		if !ok {
			http.Error(w, ErrUnknownCategory.Error(), http.StatusBadRequest)
			return
		}

		// Decodificamos a map primero para normalizar fechas y descartar id/createdAt
		// del cliente; luego re-marshal al tipo concreto de la categoría.
		var raw map[string]json.RawMessage
		if err := httpjson.Decode(r, &raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := normalizeDates(raw); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		delete(raw, "id")
		delete(raw, "createdAt")

		entry, _ := NewEntry(c)
		b, _ := json.Marshal(raw)
		if err := json.Unmarshal(b, entry); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		saved, err := svc.Append(r.Context(), horseID, entry)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name and date are required", http.StatusBadRequest)
				return
			}
			n.Notify(r.Context(), "No se pudo guardar el registro", notify.SeverityError)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		n.Notify(r.Context(), "Registro de "+categoryLabels[c]+" guardado para "+h.Name, notify.SeveritySuccess)
		httpjson.Write(w, http.StatusCreated, saved)
	}
}

// normalizeDates convierte los campos de fecha a RFC3339 (lo que espera time.Time).
// Strings vacíos se eliminan (campo opcional ausente).
func normalizeDates(raw map[string]json.RawMessage) error {
	for _, f := range dateFields {
		v, ok := raw[f]
		if !ok || string(v) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return errors.New(f + " must be a date string")
		}
		if strings.TrimSpace(s) == "" {
			delete(raw, f)
			continue
		}
		t, err := records.ParseDate(s)
		if err != nil {
			return errors.New(f + ": " + err.Error())
		}
		b, _ := json.Marshal(t)
		raw[f] = b
	}
	return nil
}
