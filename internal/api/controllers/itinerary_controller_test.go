package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/pkg/middleware"
	"lankatrip/pkg/utils"
)

type stubItineraryService struct {
	generateResp *response_models.ItineraryDetailResponse
	generateErr  error
	listResp     []response_models.ItinerarySummary
}

func (s *stubItineraryService) GenerateItinerary(ctx context.Context, ownerID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.generateResp, nil
}

func (s *stubItineraryService) ListMyItineraries(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.ItinerarySummary, error) {
	return s.listResp, nil
}

func (s *stubItineraryService) GetItineraryForOwner(ctx context.Context, ownerID string, itineraryID string) (*db_models.Itinerary, error) {
	return nil, utils.ErrItineraryNotFound
}

type stubExportService struct {
	pdf []byte
	ics []byte
	err error
}

func (s *stubExportService) RenderPDF(ctx context.Context, ownerID string, itineraryID string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func (s *stubExportService) RenderICS(ctx context.Context, ownerID string, itineraryID string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ics, nil
}

func newItineraryRouter(itinerarySvc *stubItineraryService, exportSvc *stubExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	controller := NewItineraryController(itinerarySvc, exportSvc)

	group := r.Group("/itinerary")
	group.Use(middleware.JWTAuthMiddleware())
	group.POST("/generate", controller.Generate)
	group.GET("/my-itineraries", controller.ListMine)
	group.GET("/:itineraryId", controller.GetDetail)
	group.POST("/:itineraryId/export/pdf", controller.ExportPDF)
	group.POST("/:itineraryId/export/calendar/ics", controller.ExportICS)

	return r
}

func bearerToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.CreateToken(uuid.New())
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + token
}

func generateBody(t *testing.T, budgetLevel string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(request_models.GenerateItineraryRequest{
		Destination:    "Kandy",
		DurationDays:   3,
		BudgetLevel:    budgetLevel,
		Interests:      []string{"culture", "history"},
		StartDate:      "2026-03-01",
		TravelersCount: 2,
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestGenerateRejectsMissingToken(t *testing.T) {
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", generateBody(t, "invalid_budget"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before any body validation, got %d", w.Code)
	}
}

func TestExportRejectsMissingTokenEvenForUnknownId(t *testing.T) {
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{err: utils.ErrItineraryNotFound})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/"+uuid.New().String()+"/export/pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before the existence check, got %d", w.Code)
	}
}

func TestGenerateInvalidBudgetIsUnprocessable(t *testing.T) {
	token := bearerToken(t)
	r := newItineraryRouter(&stubItineraryService{generateErr: utils.ErrInvalidBudgetLevel}, &stubExportService{})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", generateBody(t, "invalid_budget"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGenerateMalformedBodyIsUnprocessable(t *testing.T) {
	token := bearerToken(t)
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed body, got %d", w.Code)
	}
}

func TestGenerateReturnsCreatedWithFullPlan(t *testing.T) {
	token := bearerToken(t)
	resp := &response_models.ItineraryDetailResponse{
		ID:             uuid.New().String(),
		Destination:    "Kandy",
		DurationDays:   3,
		BudgetLevel:    "mid_range",
		Interests:      []string{"culture", "history"},
		StartDate:      "2026-03-01",
		TravelersCount: 2,
		Days: []response_models.ItineraryDayResponse{
			{DayNumber: 1, Date: "2026-03-01"},
			{DayNumber: 2, Date: "2026-03-02"},
			{DayNumber: 3, Date: "2026-03-03"},
		},
	}
	r := newItineraryRouter(&stubItineraryService{generateResp: resp}, &stubExportService{})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/generate", generateBody(t, "mid_range"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data response_models.ItineraryDetailResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(envelope.Data.Days) != envelope.Data.DurationDays {
		t.Fatalf("day count %d does not match duration %d", len(envelope.Data.Days), envelope.Data.DurationDays)
	}
}

func TestExportUnknownItineraryIsNotFound(t *testing.T) {
	token := bearerToken(t)
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{err: utils.ErrItineraryNotFound})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/"+uuid.New().String()+"/export/calendar/ics", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown itinerary, got %d", w.Code)
	}
}

func TestExportPDFContentHeaders(t *testing.T) {
	token := bearerToken(t)
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{pdf: []byte("%PDF-1.4 test")})

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/itinerary/"+id+"/export/pdf", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, id+".pdf") {
		t.Fatalf("expected attachment filename with id, got %q", got)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF payload in body")
	}
}

func TestExportICSContentHeaders(t *testing.T) {
	token := bearerToken(t)
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{ics: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")})

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodPost, "/itinerary/"+id+"/export/calendar/ics", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "text/calendar" {
		t.Fatalf("expected text/calendar, got %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, id+".ics") {
		t.Fatalf("expected attachment filename with id, got %q", got)
	}
}

func TestListMineRejectsBadPagination(t *testing.T) {
	token := bearerToken(t)
	r := newItineraryRouter(&stubItineraryService{}, &stubExportService{})

	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "page=0"},
		{"non-numeric page", "page=abc"},
		{"oversized page size", "pageSize=500"},
		{"zero page size", "pageSize=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/itinerary/my-itineraries?"+tt.query, nil)
			req.Header.Set("Authorization", token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}
