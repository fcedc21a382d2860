package handlers

import (
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/nbutlerequip/construction-equipment-quote-tool/testhelpers"
)

func TestHandleQuoteFactorSet_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Factor Customer")
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, 1, "10.001.AD.10", "Engine oil and filter change", 4.0, "Excavator 580N")

	handler := HandleQuoteFactorSet(app)
	req, rec := postJSON(t, fmt.Sprintf("/api/quotes/%s/factors", quote.Id),
		`{"factor": "age", "label": "9-12 years (Average)"}`)
	req.SetPathValue("id", quote.Id)
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	view := getQuoteView(t, rec)
	if view.Factors.Age != 1.25 {
		t.Errorf("age factor = %v, want 1.25", view.Factors.Age)
	}
	// Pricing reflects the new factor immediately
	if math.Abs(view.Summary.AdjustedHours-5.0) > 0.001 {
		t.Errorf("adjusted hours = %v, want 5.0", view.Summary.AdjustedHours)
	}

	// Persisted
	record, _ := app.FindRecordById("quotes", quote.Id)
	if record.GetFloat("age_factor") != 1.25 {
		t.Errorf("persisted age_factor = %v, want 1.25", record.GetFloat("age_factor"))
	}
}

func TestHandleQuoteFactorSet_UnknownFactor(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Bad Factor Customer")

	handler := HandleQuoteFactorSet(app)
	req, rec := postJSON(t, fmt.Sprintf("/api/quotes/%s/factors", quote.Id),
		`{"factor": "weather", "label": "Raining"}`)
	req.SetPathValue("id", quote.Id)
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQuoteFactorSet_UnknownLabel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Bad Label Customer")

	handler := HandleQuoteFactorSet(app)
	req, rec := postJSON(t, fmt.Sprintf("/api/quotes/%s/factors", quote.Id),
		`{"factor": "age", "label": "Brand new"}`)
	req.SetPathValue("id", quote.Id)
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	// Quote factors untouched
	record, _ := app.FindRecordById("quotes", quote.Id)
	if record.GetFloat("age_factor") != 1.0 {
		t.Errorf("age_factor changed to %v on bad label", record.GetFloat("age_factor"))
	}
}

func TestHandleQuoteFactorSet_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteFactorSet(app)
	req, rec := postJSON(t, "/api/quotes/nonexistent/factors", `{"factor": "age", "label": "0-2 years (New)"}`)
	req.SetPathValue("id", "nonexistent")
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
