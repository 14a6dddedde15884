package weights

import (
	"fmt"
	"net/http"

	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/platform/httpjson"
	"horse-medical-records/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, horsesSvc *horses.Service, n notify.Notifier) {
	r.Route("/horses/{horseID}/weights", func(wr chi.Router) {
		wr.Get("/", listWeightsHandler(svc, horsesSvc))
		wr.Post("/", createWeightHandler(svc, horsesSvc, n))
	})
}

// createWeightRequest es el cuerpo del formulario de pesaje.
type createWeightRequest struct {
	WeightKg   float64    `json:"weightKg"`
	DateTime   string     `json:"dateTime"` // RFC3339 o YYYY-MM-DDTHH:MM
	Method     Method     `json:"method" enums:"Scale,Manual"`
	RecordedBy RecordedBy `json:"recordedBy" enums:"Doctor,Staff"`
	Notes      string     `json:"notes"`
}

// listWeightsHandler godoc
// @Summary Historial de peso
// @Description Devuelve los pesajes del caballo ordenados por fecha descendente.
// @Tags weights
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Success 200 {array} Record
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID}/weights [get]
func listWeightsHandler(svc *Service, horsesSvc *horses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		if _, err := horsesSvc.GetByID(r.Context(), horseID); err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}
		httpjson.Write(w, http.StatusOK, svc.History(r.Context(), horseID))
	}
}

// createWeightHandler godoc
// @Summary Registrar peso
// @Description Agrega un pesaje. method por defecto Manual, recordedBy por defecto Staff.
// @Tags weights
// @Accept json
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Param payload body createWeightRequest true "Pesaje"
// @Success 201 {object} Record
// @Failure 400 {string} string "invalid json / dateTime inválido / peso inválido"
// @Failure 404 {string} string "horse not found"
// @Failure 500 {string} string "internal error"
// @Router /horses/{horseID}/weights [post]
func createWeightHandler(svc *Service, horsesSvc *horses.Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		h, err := horsesSvc.GetByID(r.Context(), horseID)
		if err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}

		var req createWeightRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dt, err := records.ParseDate(req.DateTime)
		if err != nil {
			http.Error(w, "dateTime: "+err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), horseID, CreateInput{
			WeightKg:   req.WeightKg,
			DateTime:   dt,
			Method:     req.Method,
			RecordedBy: req.RecordedBy,
			Notes:      req.Notes,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			n.Notify(r.Context(), "No se pudo guardar el peso", notify.SeverityError)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		n.Notify(r.Context(), fmt.Sprintf("Peso registrado para %s: %.1f kg", h.Name, rec.WeightKg), notify.SeveritySuccess)
		httpjson.Write(w, http.StatusCreated, rec)
	}
}
