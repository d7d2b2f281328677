package children

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vaccine-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/children", func(cr chi.Router) {
		cr.Post("/", registerChildHandler(svc))
		cr.Get("/", listChildrenHandler(svc))

		cr.Get("/{childID}", getChildHandler(svc))
		cr.Delete("/{childID}", deregisterChildHandler(svc))

		cr.Get("/{childID}/summary", summaryHandler(svc))
		cr.Get("/{childID}/calendar", calendarHandler(svc))

		cr.Patch("/{childID}/doses/{doseIndex}", setDoseHandler(svc))
	})
}

// registerChildRequest es el cuerpo para dar de alta un niño.
type registerChildRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

// setDoseRequest fija el estado de una dosis (set idempotente).
type setDoseRequest struct {
	Administered     bool   `json:"administered"`
	AdministeredDate string `json:"administered_date"` // YYYY-MM-DD opcional; default: inicio recomendado
}

// doseResponse representa una dosis del calendario devuelta por la API.
type doseResponse struct {
	VaccineName      string     `json:"vaccine_name"`
	DoseNumber       int        `json:"dose_number"`
	RecommendedStart string     `json:"recommended_start"`
	RecommendedEnd   string     `json:"recommended_end"`
	Status           DoseStatus `json:"status"`
	DisplayStatus    string     `json:"display_status"`
	AdministeredDate string     `json:"administered_date,omitempty"`
}

// childResponse representa un niño con su calendario completo.
type childResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	BirthDate string         `json:"birth_date"`
	Doses     []doseResponse `json:"doses"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// summaryResponse es el resumen tipo dashboard: progreso y próxima dosis.
type summaryResponse struct {
	Administered int               `json:"administered"`
	Total        int               `json:"total"`
	NextDose     *nextDoseResponse `json:"next_dose,omitempty"` // ausente si está todo completo
}

type nextDoseResponse struct {
	VaccineName      string `json:"vaccine_name"`
	DoseNumber       int    `json:"dose_number"`
	RecommendedStart string `json:"recommended_start"`
	DaysUntil        int    `json:"days_until"` // negativo si ya está vencida
}

// calendarEventResponse es el contrato de exportación a calendario.
type calendarEventResponse struct {
	Title       string `json:"title"`
	AllDayStart string `json:"all_day_start"`
	AllDayEnd   string `json:"all_day_end"`
}

const dateLayout = "2006-01-02"

// registerChildHandler godoc
// @Summary Registrar un niño
// @Description Da de alta un niño con su fecha de nacimiento y calcula de una vez el calendario completo de dosis recomendadas. El nombre debe ser único por usuario. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags children
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body registerChildRequest true "Nombre y fecha de nacimiento (YYYY-MM-DD)"
// @Success 201 {object} childResponse
// @Failure 400 {string} string "invalid json / birth_date inválida / nombre vacío o duplicado"
// @Failure 401 {string} string "unauthorized"
// @Router /children [post]
func registerChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req registerChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := time.Parse(dateLayout, strings.TrimSpace(req.BirthDate))
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		c, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			Name:      req.Name,
			BirthDate: bd,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toChildResponse(c, time.Now()))
	}
}

// listChildrenHandler godoc
// @Summary Listar niños registrados
// @Description Lista los niños del usuario autenticado, cada uno con su calendario y estados derivados contra hoy.
// @Tags children
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} childResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /children [get]
func listChildrenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		out := make([]childResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toChildResponse(c, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getChildHandler godoc
// @Summary Ver el calendario de un niño
// @Description Devuelve el niño con todas sus dosis y el estado derivado de cada una. El parámetro `as_of` permite evaluar los estados contra otra fecha (default: hoy).
// @Tags children
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param childID path string true "ID del niño"
// @Param as_of query string false "Fecha de evaluación YYYY-MM-DD (default hoy)"
// @Success 200 {object} childResponse
// @Failure 400 {string} string "as_of inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID} [get]
func getChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, asOf, ok := ownedChildWithAsOf(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toChildResponse(c, asOf))
	}
}

// deregisterChildHandler godoc
// @Summary Dar de baja un niño
// @Description Elimina el niño y con él todo su calendario de dosis.
// @Tags children
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param childID path string true "ID del niño"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID} [delete]
func deregisterChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := ownedChild(w, r, svc)
		if !ok {
			return
		}

		if err := svc.Deregister(r.Context(), c.ID); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "child not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// summaryHandler godoc
// @Summary Resumen de progreso
// @Description Devuelve el tally de dosis administradas sobre el total y la próxima dosis pendiente con los días que faltan (negativo si ya venció). `next_dose` se omite cuando el calendario está completo.
// @Tags children
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param childID path string true "ID del niño"
// @Param as_of query string false "Fecha de referencia YYYY-MM-DD (default hoy)"
// @Success 200 {object} summaryResponse
// @Failure 400 {string} string "as_of inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID}/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, asOf, ok := ownedChildWithAsOf(w, r, svc)
		if !ok {
			return
		}

		administered, total := c.Progress()
		resp := summaryResponse{Administered: administered, Total: total}

		if next, days, hasNext := c.NextPending(asOf); hasNext {
			resp.NextDose = &nextDoseResponse{
				VaccineName:      next.VaccineName,
				DoseNumber:       next.DoseNumber,
				RecommendedStart: next.RecommendedStart.Format(dateLayout),
				DaysUntil:        days,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// calendarHandler godoc
// @Summary Exportar dosis pendientes como eventos de calendario
// @Description Devuelve un evento de día completo por dosis pendiente (título "<vacuna> dose <n>", end exclusivo = start + 1 día). El colaborador de calendario renderiza el link o archivo por su cuenta.
// @Tags children
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param childID path string true "ID del niño"
// @Success 200 {array} calendarEventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID}/calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := ownedChild(w, r, svc)
		if !ok {
			return
		}

		events := c.CalendarEvents()
		out := make([]calendarEventResponse, 0, len(events))
		for _, e := range events {
			out = append(out, calendarEventResponse{
				Title:       e.Title,
				AllDayStart: e.AllDayStart.Format(dateLayout),
				AllDayEnd:   e.AllDayEnd.Format(dateLayout),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// setDoseHandler godoc
// @Summary Marcar una dosis como administrada (o volverla a pendiente)
// @Description Set idempotente del estado de la dosis en la posición `doseIndex` del calendario ordenado. Con `administered: true`, `administered_date` es opcional (default: inicio recomendado). Con `administered: false` se limpia la fecha.
// @Tags children
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param childID path string true "ID del niño"
// @Param doseIndex path int true "Posición de la dosis (0-based)"
// @Param payload body setDoseRequest true "Estado objetivo y fecha opcional"
// @Success 200 {object} childResponse
// @Failure 400 {string} string "invalid json / doseIndex o fecha inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child o dosis inexistente"
// @Router /children/{childID}/doses/{doseIndex} [patch]
func setDoseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := ownedChild(w, r, svc)
		if !ok {
			return
		}

		idx, err := strconv.Atoi(chi.URLParam(r, "doseIndex"))
		if err != nil {
			http.Error(w, "doseIndex must be an integer", http.StatusBadRequest)
			return
		}

		var req setDoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var administeredAt *time.Time
		if strings.TrimSpace(req.AdministeredDate) != "" {
			t, err := time.Parse(dateLayout, req.AdministeredDate)
			if err != nil {
				http.Error(w, "administered_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			administeredAt = &t
		}

		updated, err := svc.SetAdministered(r.Context(), c.ID, idx, req.Administered, administeredAt)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "dose not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toChildResponse(updated, time.Now()))
	}
}

// ownedChild resuelve el childID de la ruta y exige que el usuario
// autenticado sea su dueño. Escribe la respuesta de error si algo falla.
func ownedChild(w http.ResponseWriter, r *http.Request, svc *Service) (Child, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Child{}, false
	}

	childID := chi.URLParam(r, "childID")
	c, err := svc.GetByID(r.Context(), childID)
	if err != nil {
		http.Error(w, "child not found", http.StatusNotFound)
		return Child{}, false
	}

	if c.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Child{}, false
	}
	return c, true
}

func ownedChildWithAsOf(w http.ResponseWriter, r *http.Request, svc *Service) (Child, time.Time, bool) {
	c, ok := ownedChild(w, r, svc)
	if !ok {
		return Child{}, time.Time{}, false
	}

	asOf := time.Now()
	if v := strings.TrimSpace(r.URL.Query().Get("as_of")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			http.Error(w, "as_of must be YYYY-MM-DD", http.StatusBadRequest)
			return Child{}, time.Time{}, false
		}
		asOf = t
	}
	return c, asOf, true
}

func toChildResponse(c Child, asOf time.Time) childResponse {
	doses := make([]doseResponse, 0, len(c.Obligations))
	for _, o := range c.Obligations {
		d := doseResponse{
			VaccineName:      o.VaccineName,
			DoseNumber:       o.DoseNumber,
			RecommendedStart: o.RecommendedStart.Format(dateLayout),
			RecommendedEnd:   o.RecommendedEnd.Format(dateLayout),
			Status:           o.Status,
			DisplayStatus:    string(EvaluateStatus(o, asOf)),
		}
		if o.AdministeredAt != nil {
			d.AdministeredDate = o.AdministeredAt.Format(dateLayout)
		}
		doses = append(doses, d)
	}

	return childResponse{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate.Format(dateLayout),
		Doses:     doses,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
