package visits

import (
	"net/http"

	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/platform/httpjson"
	"horse-medical-records/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, horsesSvc *horses.Service, n notify.Notifier) {
	r.Route("/horses/{horseID}/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(svc, horsesSvc))
		vr.Post("/", createVisitHandler(svc, horsesSvc, n))
	})
}

// createVisitRequest es el formulario de examen físico.
type createVisitRequest struct {
	Date       string      `json:"date"` // YYYY-MM-DD o RFC3339
	Doctor     string      `json:"doctor"`
	Reason     string      `json:"reason"`
	Vitals     Vitals      `json:"vitals"`
	Attitude   Attitude    `json:"attitude" enums:"BAR,QAR,Dull,Depressed"`
	Appetite   Appetite    `json:"appetite" enums:"Normal,Reduced,Increased,Absent"`
	Limbs      Limbs       `json:"limbs"`
	Systems    SystemNotes `json:"systems"`
	Assessment string      `json:"assessment"`
	Plan       string      `json:"plan"`
	Notes      string      `json:"notes"`
}

// listVisitsHandler godoc
// @Summary Historial de visitas
// @Description Exámenes físicos del caballo, por fecha descendente.
// @Tags visits
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Success 200 {array} Record
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID}/visits [get]
func listVisitsHandler(svc *Service, horsesSvc *horses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		if _, err := horsesSvc.GetByID(r.Context(), horseID); err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}
		httpjson.Write(w, http.StatusOK, svc.History(r.Context(), horseID))
	}
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description Registra un examen físico. Los tags por miembro se deduplican y el grado de claudicación se limita a 0-5.
// @Tags visits
// @Accept json
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Param payload body createVisitRequest true "Examen físico"
// @Success 201 {object} Record
// @Failure 400 {string} string "invalid json / date inválido"
// @Failure 404 {string} string "horse not found"
// @Failure 500 {string} string "internal error"
// @Router /horses/{horseID}/visits [post]
func createVisitHandler(svc *Service, horsesSvc *horses.Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		h, err := horsesSvc.GetByID(r.Context(), horseID)
		if err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}

		var req createVisitRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := records.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "date: "+err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), horseID, CreateInput{
			Date:       date,
			Doctor:     req.Doctor,
			Reason:     req.Reason,
			Vitals:     req.Vitals,
			Attitude:   req.Attitude,
			Appetite:   req.Appetite,
			Limbs:      req.Limbs,
			Systems:    req.Systems,
			Assessment: req.Assessment,
			Plan:       req.Plan,
			Notes:      req.Notes,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			n.Notify(r.Context(), "No se pudo guardar la visita", notify.SeverityError)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		n.Notify(r.Context(), "Visita registrada para "+h.Name, notify.SeveritySuccess)
		httpjson.Write(w, http.StatusCreated, rec)
	}
}
