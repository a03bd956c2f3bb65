package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bookme/internal/availability"
	"bookme/internal/middleware"
	"bookme/internal/schedule"
	"bookme/pkg/log"
)

const adminToken = "s3cret"

type stubUseCase struct {
	weekly    availability.WeeklySchedule
	err       error
	replaceIn schedule.ReplaceInput
	replaced  bool
}

func (s *stubUseCase) Get(ctx context.Context) (availability.WeeklySchedule, error) {
	return s.weekly, s.err
}

func (s *stubUseCase) Replace(ctx context.Context, in schedule.ReplaceInput) (availability.WeeklySchedule, error) {
	s.replaceIn = in
	s.replaced = true
	return s.weekly, s.err
}

func workWeek() availability.WeeklySchedule {
	start, end := availability.MustClock("09:00"), availability.MustClock("17:00")
	var w availability.WeeklySchedule
	for wd := range w.Days {
		if wd == int(time.Saturday) || wd == int(time.Sunday) {
			w.Days[wd] = availability.DaySchedule{Off: true}
			continue
		}
		w.Days[wd] = availability.DaySchedule{Start: &start, End: &end}
	}
	return w
}

func newRouter(uc schedule.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	mw := middleware.New(log.NewNop(), middleware.Config{AdminToken: adminToken})
	RegisterAdminRoutes(r.Group("/api/v1/admin"), h, mw)
	return r
}

func do(r *gin.Engine, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/admin/schedule", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fullWeekBody(tz string) string {
	days := make([]string, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		abbrev := availability.WeekdayAbbrev(wd)
		if wd == time.Sunday || wd == time.Saturday {
			days = append(days, fmt.Sprintf(`"%s":{"off":true}`, abbrev))
			continue
		}
		days = append(days, fmt.Sprintf(`"%s":{"start":"09:00","end":"17:00"}`, abbrev))
	}
	return fmt.Sprintf(`{"timezone":%q,"days":{%s}}`, tz, strings.Join(days, ","))
}

func TestGetHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		r := newRouter(&stubUseCase{weekly: workWeek()})
		w := do(r, http.MethodGet, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var body struct {
			Data scheduleResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Data.Timezone != "UTC" {
			t.Errorf("timezone = %q, want UTC", body.Data.Timezone)
		}
		if got := body.Data.Days["mon"]; got.Start != "09:00" || got.End != "17:00" || got.Off {
			t.Errorf("mon = %+v", got)
		}
		if got := body.Data.Days["sun"]; !got.Off {
			t.Errorf("sun = %+v, want off", got)
		}
	})

	t.Run("Not configured", func(t *testing.T) {
		r := newRouter(&stubUseCase{err: schedule.ErrScheduleNotFound})
		if w := do(r, http.MethodGet, ""); w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("Missing token", func(t *testing.T) {
		r := newRouter(&stubUseCase{weekly: workWeek()})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedule", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestReplaceHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		ucErr       error
		wantStatus  int
		wantReplace bool
	}{
		{name: "OK", body: fullWeekBody("Europe/Berlin"), wantStatus: http.StatusOK, wantReplace: true},
		{name: "Malformed JSON", body: `{"timezone":`, wantStatus: http.StatusBadRequest},
		{name: "Missing timezone", body: `{"days":{}}`, wantStatus: http.StatusBadRequest},
		{name: "Missing day", body: `{"timezone":"UTC","days":{"mon":{"off":true}}}`, wantStatus: http.StatusBadRequest},
		{
			name:       "Unknown day",
			body:       strings.Replace(fullWeekBody("UTC"), `"sun"`, `"sunday"`, 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "Rejected by usecase",
			body:        fullWeekBody("UTC"),
			ucErr:       fmt.Errorf("%w: mon: start must be before end", schedule.ErrInvalidSchedule),
			wantStatus:  http.StatusBadRequest,
			wantReplace: true,
		},
		{
			name:        "Storage failure",
			body:        fullWeekBody("UTC"),
			ucErr:       fmt.Errorf("pgx: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantReplace: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{weekly: workWeek(), err: tt.ucErr}
			w := do(newRouter(uc), http.MethodPut, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if uc.replaced != tt.wantReplace {
				t.Fatalf("usecase called = %v, want %v", uc.replaced, tt.wantReplace)
			}
		})
	}

	t.Run("Input mapping", func(t *testing.T) {
		uc := &stubUseCase{weekly: workWeek()}
		do(newRouter(uc), http.MethodPut, fullWeekBody("Europe/Berlin"))

		if uc.replaceIn.Timezone != "Europe/Berlin" {
			t.Errorf("timezone = %q", uc.replaceIn.Timezone)
		}
		if mon := uc.replaceIn.Days[time.Monday]; mon.Off || mon.Start != "09:00" || mon.End != "17:00" {
			t.Errorf("mon = %+v", mon)
		}
		if !uc.replaceIn.Days[time.Saturday].Off {
			t.Error("sat should be off")
		}
	})
}
