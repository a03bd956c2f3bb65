package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bookme/internal/eventtype"
	"bookme/internal/middleware"
	"bookme/internal/model"
	"bookme/pkg/log"
)

type stubUseCase struct {
	eventtype.UseCase
	created eventtype.CreateInput
	err     error
}

func (s *stubUseCase) Create(ctx context.Context, in eventtype.CreateInput) (eventtype.CreateOutput, error) {
	s.created = in
	return eventtype.CreateOutput{EventType: eventtype.EventType{ID: "et-1", Name: in.Name, Slug: "intro-call", LocationType: in.LocationType}}, s.err
}

func (s *stubUseCase) DetailBySlug(ctx context.Context, slug string) (eventtype.DetailOutput, error) {
	if slug != "intro-call" {
		return eventtype.DetailOutput{}, eventtype.ErrEventTypeNotFound
	}
	return eventtype.DetailOutput{EventType: eventtype.EventType{ID: "et-1", Slug: slug, LocationType: model.LocationPhone}}, nil
}

func newRouter(uc eventtype.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	mw := middleware.New(log.NewNop(), middleware.Config{AdminToken: "admin"})
	RegisterRoutes(r.Group("/api/v1/event-types"), h)
	RegisterAdminRoutes(r.Group("/api/v1/admin/event-types"), h, mw)
	return r
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		token      string
		ucErr      error
		wantStatus int
	}{
		{name: "Created", body: `{"name":"Intro Call","duration_minutes":30,"location_type":"GMEET"}`, token: "admin", wantStatus: http.StatusCreated},
		{name: "Unauthorized", body: `{"name":"Intro Call","duration_minutes":30,"location_type":"GMEET"}`, token: "", wantStatus: http.StatusUnauthorized},
		{name: "Unsupported duration", body: `{"name":"Intro Call","duration_minutes":20,"location_type":"GMEET"}`, token: "admin", wantStatus: http.StatusBadRequest},
		{name: "Unknown location", body: `{"name":"Intro Call","duration_minutes":30,"location_type":"ZOOM"}`, token: "admin", wantStatus: http.StatusBadRequest},
		{name: "Duplicate", body: `{"name":"Intro Call","duration_minutes":30,"location_type":"PHONE"}`, token: "admin", ucErr: eventtype.ErrDuplicateName, wantStatus: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.ucErr}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/event-types", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated && uc.created.LocationType != model.LocationGoogleMeet {
				t.Errorf("unexpected input %+v", uc.created)
			}
		})
	}
}

func TestDetailHandler(t *testing.T) {
	r := newRouter(&stubUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/event-types/intro-call", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data itemResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.EventType.LocationLabel != "Phone call" {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/event-types/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
