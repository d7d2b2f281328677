package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaccine-reminder/internal/router"
)

func TestHTTP_EndToEnd_ScheduleLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Registrar un niño
	childID, doses := registerChild(t, ts.URL, ownerID, map[string]any{
		"name":       "Milo",
		"birth_date": "2023-01-15",
	})
	if len(doses) == 0 {
		t.Fatalf("expected a non-empty schedule on registration")
	}

	// escenario concreto: BCG (offset 5 meses) arranca el 2023-06-15
	foundBCG := false
	for _, d := range doses {
		if d.VaccineName == "BCG" && d.DoseNumber == 1 {
			foundBCG = true
			if d.RecommendedStart != "2023-06-15" || d.RecommendedEnd != "2023-07-14" {
				t.Fatalf("BCG window: expected 2023-06-15..2023-07-14, got %s..%s", d.RecommendedStart, d.RecommendedEnd)
			}
		}
	}
	if !foundBCG {
		t.Fatalf("BCG dose not found in schedule")
	}

	// 2) Nombre duplicado => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/children", ownerID, map[string]any{
			"name":       "Milo",
			"birth_date": "2024-03-01",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for duplicate name, got %d", st)
		}
	}

	// 3) Otro usuario no puede ver al niño
	{
		st, _ := doReq(t, ts.URL, "GET", "/children/"+childID, strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for non-owner, got %d", st)
		}
	}

	// 4) Resumen inicial: 0 administradas, próxima dosis conocida
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/summary?as_of=2023-03-10", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var s summaryPayload
		mustUnmarshal(t, body, &s)
		if s.Administered != 0 || s.Total != len(doses) {
			t.Fatalf("expected progress (0, %d), got (%d, %d)", len(doses), s.Administered, s.Total)
		}
		if s.NextDose == nil || s.NextDose.DaysUntil != 5 {
			t.Fatalf("expected next dose in 5 days, got %+v", s.NextDose)
		}
	}

	// 5) Marcar la primera dosis como administrada (sin fecha => default)
	{
		st, body := doReq(t, ts.URL, "PATCH", "/children/"+childID+"/doses/0", ownerID, map[string]any{
			"administered": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch dose, got %d body=%s", st, string(body))
		}
		var c childPayload
		mustUnmarshal(t, body, &c)
		if c.Doses[0].Status != "administered" {
			t.Fatalf("expected administered, got %s", c.Doses[0].Status)
		}
		if c.Doses[0].AdministeredDate != c.Doses[0].RecommendedStart {
			t.Fatalf("expected default administered date = recommended start")
		}
	}

	// 6) El resumen refleja el progreso
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/summary", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		var s summaryPayload
		mustUnmarshal(t, body, &s)
		if s.Administered != 1 {
			t.Fatalf("expected 1 administered, got %d", s.Administered)
		}
	}

	// 7) Estados derivados con as_of dentro de la ventana de BCG
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"?as_of=2023-06-15", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get child, got %d", st)
		}
		var c childPayload
		mustUnmarshal(t, body, &c)
		for _, d := range c.Doses {
			if d.VaccineName == "BCG" && d.DisplayStatus != "due" {
				t.Fatalf("BCG at window start: expected due, got %s", d.DisplayStatus)
			}
		}
	}

	// 8) Índice de dosis fuera de rango => 404
	{
		st, _ := doReq(t, ts.URL, "PATCH", fmt.Sprintf("/children/%s/doses/%d", childID, len(doses)), ownerID, map[string]any{
			"administered": true,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for out-of-range dose index, got %d", st)
		}
	}

	// 9) Exportación a calendario: solo pendientes, end = start + 1 día
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/calendar", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 calendar, got %d", st)
		}
		var events []calendarPayload
		mustUnmarshal(t, body, &events)
		if len(events) != len(doses)-1 {
			t.Fatalf("expected %d calendar events, got %d", len(doses)-1, len(events))
		}
	}

	// 10) Baja del niño
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/children/"+childID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deregister, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/children/"+childID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after deregister, got %d", st)
		}
	}
}

func TestHTTP_Children_RequireAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/children", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/children", "", map[string]any{
		"name":       "Milo",
		"birth_date": "2023-01-15",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}
}

func TestHTTP_Vaccines_PublicListing(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/vaccines", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 vaccines without auth, got %d", st)
	}

	var out []struct {
		Name      string `json:"name"`
		DoseCount int    `json:"dose_count"`
		Periods   []struct {
			OffsetMonths   int `json:"offset_months"`
			IntervalMonths int `json:"interval_months"`
		} `json:"periods"`
		Description string `json:"description"`
	}
	mustUnmarshal(t, body, &out)
	if len(out) == 0 {
		t.Fatalf("expected non-empty vaccine table")
	}
	for _, v := range out {
		if len(v.Periods) != v.DoseCount {
			t.Fatalf("%s: periods/dose_count mismatch", v.Name)
		}
	}
}

// -------------------------
// Helpers
// -------------------------

type dosePayload struct {
	VaccineName      string `json:"vaccine_name"`
	DoseNumber       int    `json:"dose_number"`
	RecommendedStart string `json:"recommended_start"`
	RecommendedEnd   string `json:"recommended_end"`
	Status           string `json:"status"`
	DisplayStatus    string `json:"display_status"`
	AdministeredDate string `json:"administered_date"`
}

type childPayload struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Doses []dosePayload `json:"doses"`
}

type summaryPayload struct {
	Administered int `json:"administered"`
	Total        int `json:"total"`
	NextDose     *struct {
		VaccineName string `json:"vaccine_name"`
		DaysUntil   int    `json:"days_until"`
	} `json:"next_dose"`
}

type calendarPayload struct {
	Title       string `json:"title"`
	AllDayStart string `json:"all_day_start"`
	AllDayEnd   string `json:"all_day_end"`
}

func registerChild(t *testing.T, baseURL, userID string, payload map[string]any) (string, []dosePayload) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/children", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register child, got %d body=%s", st, string(body))
	}

	var resp childPayload
	mustUnmarshal(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("register child: missing id body=%s", string(body))
	}
	return resp.ID, resp.Doses
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
