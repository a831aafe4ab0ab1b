package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) (*Handler, *mockRepo, *echo.Echo) {
	t.Helper()
	repo := newMockRepo()
	return NewHandler(NewService(repo)), repo, echo.New()
}

func TestHandlerCreateTest(t *testing.T) {
	h, _, e := setupHandler(t)

	body := `{"name_ar":"سكر صائم","name_en":"Fasting Glucose","price":10,"turnaround_hours":1,"result_fields":[{"name":"Glucose","type":"number","unit":"mg/dL"}]}`
	req := httptest.NewRequest(http.MethodPost, "/tests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateTest(c); err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	var got Test
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.NameEn != "Fasting Glucose" {
		t.Errorf("name_en = %q", got.NameEn)
	}
	if got.ID == uuid.Nil {
		t.Error("expected assigned id in response")
	}
}

func TestHandlerCreateTestInvalid(t *testing.T) {
	h, _, e := setupHandler(t)

	body := `{"name_ar":"","name_en":"","price":10}`
	req := httptest.NewRequest(http.MethodPost, "/tests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.CreateTest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerGetTestNotFound(t *testing.T) {
	h, _, e := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.GetTest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandlerGetTestBadID(t *testing.T) {
	h, _, e := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetTest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerDeleteTestConflict(t *testing.T) {
	h, repo, e := setupHandler(t)

	tt := validTest()
	if err := repo.Create(context.Background(), tt); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo.sampleCount[tt.ID] = 1

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(tt.ID.String())

	err := h.DeleteTest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409 for referenced test, got %v", err)
	}
}

func TestHandlerListTests(t *testing.T) {
	h, repo, e := setupHandler(t)
	for i := 0; i < 3; i++ {
		if err := repo.Create(context.Background(), validTest()); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/tests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListTests(c); err != nil {
		t.Fatalf("ListTests: %v", err)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
}
