package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nbutlerequip/construction-equipment-quote-tool/testhelpers"
)

func searchResponse(t *testing.T, rec *httptest.ResponseRecorder) (int, []map[string]any) {
	t.Helper()
	var body struct {
		Count   int              `json:"count"`
		Results []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body.Count, body.Results
}

func TestHandleSRTSearch_AllModels(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	db := testhelpers.WriteTestDatabase(t)
	handler := HandleSRTSearch(db)

	req := httptest.NewRequest(http.MethodGet, "/api/srt/search?q=oil+and+filter", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	count, results := searchResponse(t, rec)
	if count != 2 {
		t.Errorf("count = %d, want 2 (one per model carrying the oil change)", count)
	}
	for _, r := range results {
		if r["code"] != "10.001.AD.10" {
			t.Errorf("unexpected result code %v", r["code"])
		}
	}
}

func TestHandleSRTSearch_ScopedToModel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	db := testhelpers.WriteTestDatabase(t)
	handler := HandleSRTSearch(db)

	req := httptest.NewRequest(http.MethodGet, "/api/srt/search?q=OIL&model=excavator_580N", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	count, results := searchResponse(t, rec)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if results[0]["model_key"] != "excavator_580N" {
		t.Errorf("result leaked out of scope: %v", results[0]["model_key"])
	}
}

func TestHandleSRTSearch_CodeMatch(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	db := testhelpers.WriteTestDatabase(t)
	handler := HandleSRTSearch(db)

	req := httptest.NewRequest(http.MethodGet, "/api/srt/search?q=44.200", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	count, results := searchResponse(t, rec)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if results[0]["description"] != "Front axle seal replace" {
		t.Errorf("description = %v", results[0]["description"])
	}
}

func TestHandleSRTSearch_MissingQuery(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	db := testhelpers.WriteTestDatabase(t)
	handler := HandleSRTSearch(db)

	req := httptest.NewRequest(http.MethodGet, "/api/srt/search", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleSRTSearch_UnknownScope(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	db := testhelpers.WriteTestDatabase(t)
	handler := HandleSRTSearch(db)

	req := httptest.NewRequest(http.MethodGet, "/api/srt/search?q=oil&model=grader_140M", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
