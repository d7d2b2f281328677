package vaccines

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, table []Definition) {
	r.Get("/vaccines", listVaccinesHandler(table))
}

// vaccineResponse representa una definición de vacuna devuelta por la API.
type vaccineResponse struct {
	Name        string           `json:"name"`
	DoseCount   int              `json:"dose_count"`
	Periods     []periodResponse `json:"periods"`
	Description string           `json:"description"`
}

type periodResponse struct {
	OffsetMonths   int `json:"offset_months"`
	IntervalMonths int `json:"interval_months"`
}

// listVaccinesHandler godoc
// @Summary Listar la tabla de vacunas
// @Description Devuelve la tabla maestra de vacunas con sus dosis, reglas de período y descripción informativa. Endpoint público (no requiere autenticación).
// @Tags vaccines
// @Produce json
// @Success 200 {array} vaccineResponse
// @Router /vaccines [get]
func listVaccinesHandler(table []Definition) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out := make([]vaccineResponse, 0, len(table))
		for _, d := range table {
			periods := make([]periodResponse, 0, len(d.Periods))
			for _, p := range d.Periods {
				periods = append(periods, periodResponse{
					OffsetMonths:   p.OffsetMonths,
					IntervalMonths: p.IntervalMonths,
				})
			}
			out = append(out, vaccineResponse{
				Name:        d.Name,
				DoseCount:   d.DoseCount,
				Periods:     periods,
				Description: d.Description,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
