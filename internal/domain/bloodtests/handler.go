package bloodtests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/platform/httpjson"
	"horse-medical-records/internal/platform/metrics"
	"horse-medical-records/internal/ports/notify"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, horsesSvc *horses.Service, n notify.Notifier, m *metrics.Metrics) {
	r.Route("/horses/{horseID}/bloodtests", func(br chi.Router) {
		br.Get("/", listBloodTestsHandler(svc, horsesSvc))
		br.Post("/", createBloodTestHandler(svc, horsesSvc, n))
	})

	r.Get("/labs/reference", referenceHandler())
	r.Get("/labs/flag", flagHandler(m))
}

// labValue acepta número o string en el JSON del formulario.
type labValue string

func (v *labValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = labValue(str)
		return nil
	}
	*v = labValue(s)
	return nil
}

// createBloodTestRequest es el formulario de panel de sangre.
type createBloodTestRequest struct {
	Date      string              `json:"date"`
	Doctor    string              `json:"doctor"`
	Device    string              `json:"device"`
	SampleID  string              `json:"sampleId"`
	PatientID string              `json:"patientId"`
	Values    map[string]labValue `json:"values" swaggertype:"object,string"`
	QC        QC                  `json:"qc"`
	Notes     string              `json:"notes"`
}

// bloodTestResponse es el panel con la clasificación de cada valor.
type bloodTestResponse struct {
	Record
	Results  []Result `json:"results"`
	Abnormal int      `json:"abnormal"`
}

type flagResponse struct {
	Param string         `json:"param"`
	Value string         `json:"value"`
	Flag  Classification `json:"flag"`
	Range *Range         `json:"range,omitempty"`
}

func toResponse(rec Record) bloodTestResponse {
	return bloodTestResponse{Record: rec, Results: rec.Results(), Abnormal: rec.Abnormal()}
}

// listBloodTestsHandler godoc
// @Summary Historial de paneles de sangre
// @Description Paneles del caballo por fecha descendente, cada valor con su rango y flag Low/Normal/High.
// @Tags bloodtests
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Success 200 {array} bloodTestResponse
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID}/bloodtests [get]
func listBloodTestsHandler(svc *Service, horsesSvc *horses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		if _, err := horsesSvc.GetByID(r.Context(), horseID); err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}

		items := svc.History(r.Context(), horseID)
		out := make([]bloodTestResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toResponse(rec))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createBloodTestHandler godoc
// @Summary Registrar panel de sangre
// @Description Guarda un panel. Valores vacíos, no numéricos o de parámetros desconocidos se descartan.
// @Tags bloodtests
// @Accept json
// @Produce json
// @Param horseID path string true "ID del caballo"
// @Param payload body createBloodTestRequest true "Panel"
// @Success 201 {object} bloodTestResponse
// @Failure 400 {string} string "invalid json / date inválido"
// @Failure 404 {string} string "horse not found"
// @Failure 500 {string} string "internal error"
// @Router /horses/{horseID}/bloodtests [post]
func createBloodTestHandler(svc *Service, horsesSvc *horses.Service, n notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		horseID := chi.URLParam(r, "horseID")
		h, err := horsesSvc.GetByID(r.Context(), horseID)
		if err != nil {
			http.Error(w, "horse not found", http.StatusNotFound)
			return
		}

		var req createBloodTestRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := records.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "date: "+err.Error(), http.StatusBadRequest)
			return
		}

		raw := make(map[string]string, len(req.Values))
		for k, v := range req.Values {
			raw[k] = string(v)
		}

		rec, err := svc.Create(r.Context(), horseID, CreateInput{
			Date:      date,
			Doctor:    req.Doctor,
			Device:    req.Device,
			SampleID:  req.SampleID,
			PatientID: req.PatientID,
			RawValues: raw,
			QC:        req.QC,
			Notes:     req.Notes,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			n.Notify(r.Context(), "No se pudo guardar el panel", notify.SeverityError)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := toResponse(rec)
		sev := notify.SeveritySuccess
		msg := "Panel de sangre guardado para " + h.Name
		if resp.Abnormal > 0 {
			sev = notify.SeverityWarning
			msg = fmt.Sprintf("%s (%d valores fuera de rango)", msg, resp.Abnormal)
		}
		n.Notify(r.Context(), msg, sev)
		httpjson.Write(w, http.StatusCreated, resp)
	}
}

// referenceHandler godoc
// @Summary Tabla de referencia
// @Description Rangos de referencia por parámetro (min, max, unidad), en orden de presentación.
// @Tags labs
// @Produce json
// @Success 200 {array} Range
// @Router /labs/reference [get]
func referenceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpjson.Write(w, http.StatusOK, References())
	}
}

// flagHandler godoc
// @Summary Clasificar un valor
// @Description Clasifica value contra el rango de param. Nunca falla: entradas inválidas son Unclassified.
// @Tags labs
// @Produce json
// @Param param query string true "Parámetro (ej: WBC)"
// @Param value query string false "Valor crudo"
// @Success 200 {object} flagResponse
// @Router /labs/flag [get]
func flagHandler(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		param := strings.TrimSpace(r.URL.Query().Get("param"))
		value := r.URL.Query().Get("value")

		c := Flag(param, value)
		m.LabFlag(string(c))

		resp := flagResponse{Param: param, Value: value, Flag: c}
		if ref, ok := Reference(param); ok {
			resp.Range = &ref
		}
		httpjson.Write(w, http.StatusOK, resp)
	}
}
