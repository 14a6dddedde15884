package records

import (
	"net/http"

	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, deps Deps, horsesSvc *horses.Service, n notify.Notifier) {
	r.Delete("/horses/{horseID}/records", resetHorseHandler(deps, horsesSvc, n))
}

// resetHorseHandler godoc
// @Summary Borrar historial
// @Description Borra los cuatro dominios del caballo (weights, visits, bloodtests, care). Idempotente.
// @Tags records
// @Param horseID path string true "ID del caballo"
// @Success 204
// @Failure 404 {string} string "horse not found"
// @Failure 500 {string} string "internal error"
// @Router /horses/{horseID}/records [delete]
func resetHorseHandler(deps Deps, horsesSvc *horses.Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		h, err := horsesSvc.GetByID(r.Context(), horseID)
		if err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}

		if err := ResetHorse(r.Context(), deps, h.ID); err != nil {
			n.Notify(r.Context(), "No se pudo borrar el historial de "+h.Name, notify.SeverityError)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		n.Notify(r.Context(), "Historial de "+h.Name+" borrado", notify.SeverityInfo)
		w.WriteHeader(http.StatusNoContent)
	}
}
