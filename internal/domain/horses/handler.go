package horses

import (
	"errors"
	"net/http"

	"horse-medical-records/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/horses", listHorsesHandler(svc))
	r.Get("/horses/{horseID}", getHorseHandler(svc))
}

// listHorsesHandler godoc
// @Summary Listar caballos
// @Description Devuelve el roster de caballos en el orden del proveedor.
// @Tags horses
// @Produce json
// @Success 200 {array} Horse
// @Failure 502 {string} string "roster unavailable"
// @Router /horses [get]
func listHorsesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "roster unavailable", http.StatusBadGateway)
			return
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

// getHorseHandler godoc
// @Summary Obtener caballo
// @Tags horses
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Success 200 {object} Horse
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID} [get]
func getHorseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.GetByID(r.Context(), chi.URLParam(r, "horseID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}
		httpjson.Write(w, http.StatusOK, h)
	}
}
