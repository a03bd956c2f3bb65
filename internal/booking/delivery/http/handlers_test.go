package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bookme/internal/availability"
	"bookme/internal/booking"
	"bookme/internal/eventtype"
	"bookme/internal/middleware"
	"bookme/internal/model"
	"bookme/pkg/log"
	"bookme/pkg/response"
)

type stubUseCase struct {
	booking.UseCase
	slotsIn booking.SlotsInput
	bookIn  booking.BookInput
	err     error
}

func (s *stubUseCase) Slots(ctx context.Context, in booking.SlotsInput) (booking.SlotsOutput, error) {
	s.slotsIn = in
	if s.err != nil {
		return booking.SlotsOutput{}, s.err
	}
	loc, _ := time.LoadLocation(in.Timezone)
	d, _ := availability.ParseDate(in.Date)
	return booking.SlotsOutput{
		EventType: eventtype.EventType{Slug: in.Slug, DurationMinutes: 30},
		Date:      d,
		Timezone:  loc.String(),
		Slots:     []time.Time{d.Midnight(loc).Add(9 * time.Hour), d.Midnight(loc).Add(9*time.Hour + 30*time.Minute)},
	}, nil
}

func (s *stubUseCase) Book(ctx context.Context, in booking.BookInput) (booking.BookOutput, error) {
	s.bookIn = in
	if s.err != nil {
		return booking.BookOutput{}, s.err
	}
	return booking.BookOutput{Booking: booking.Booking{
		ID: "b-1", Name: in.Name, Email: in.Email, Start: in.Start, End: in.Start.Add(30 * time.Minute),
		Timezone: in.Timezone, Status: model.BookingConfirmed, LocationType: model.LocationGoogleMeet,
	}}, nil
}

func (s *stubUseCase) Invitation(ctx context.Context, id string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil
}

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func newRouter(uc booking.UseCase, limiter middleware.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	mw := middleware.New(log.NewNop(), middleware.Config{Limiter: limiter})
	RegisterEventTypeRoutes(r.Group("/api/v1/event-types"), h, mw)
	RegisterRoutes(r.Group("/api/v1/bookings"), h)
	return r
}

func TestSlotsHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		uc := &stubUseCase{}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/event-types/intro-call/slots?date=2024-05-06&tz=Asia/Tokyo", nil)
		w := httptest.NewRecorder()
		newRouter(uc, nil).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.slotsIn.Slug != "intro-call" || uc.slotsIn.Timezone != "Asia/Tokyo" {
			t.Errorf("unexpected input %+v", uc.slotsIn)
		}
		var resp struct {
			Data slotsResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if len(resp.Data.Slots) != 2 || resp.Data.Date != "2024-05-06" {
			t.Errorf("unexpected body %+v", resp.Data)
		}
		if !strings.Contains(w.Body.String(), "2024-05-06T09:00:00+09:00") {
			t.Errorf("expected slots with caller offset, got %s", w.Body.String())
		}
	})

	t.Run("Missing date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/event-types/intro-call/slots", nil)
		w := httptest.NewRecorder()
		newRouter(&stubUseCase{}, nil).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "Invalid request", err: availability.ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "Out of range", err: booking.ErrDateOutOfRange, wantStatus: http.StatusBadRequest},
		{name: "Unknown event type", err: eventtype.ErrEventTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "Slot taken", err: booking.ErrSlotUnavailable, wantStatus: http.StatusConflict},
		{
			name:       "Broken schedule",
			err:        errors.Join(booking.ErrScheduleUnavailable, availability.ErrConfiguration),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "scheduling temporarily unavailable",
		},
		{name: "Calendar down", err: booking.ErrCalendarUnavailable, wantStatus: http.StatusBadGateway},
		{name: "Unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/event-types/intro-call/slots?date=2024-05-06", nil)
			w := httptest.NewRecorder()
			newRouter(&stubUseCase{err: tt.err}, nil).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantMsg != "" {
				var resp response.Resp
				json.Unmarshal(w.Body.Bytes(), &resp)
				if resp.Message != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, resp.Message)
				}
			}
		})
	}
}

func TestBookHandler(t *testing.T) {
	valid := `{"start":"2024-05-06T10:00:00Z","timezone":"UTC","name":"Ada","email":"ada@example.com"}`
	tests := []struct {
		name       string
		body       string
		limiter    middleware.Limiter
		ucErr      error
		wantStatus int
	}{
		{name: "Created", body: valid, wantStatus: http.StatusCreated},
		{name: "Bad email", body: `{"start":"2024-05-06T10:00:00Z","name":"Ada","email":"nope"}`, wantStatus: http.StatusBadRequest},
		{name: "Email with display name", body: `{"start":"2024-05-06T10:00:00Z","name":"Ada","email":"Ada Lovelace <ada@example.com>"}`, wantStatus: http.StatusBadRequest},
		{name: "Email with trailing text", body: `{"start":"2024-05-06T10:00:00Z","name":"Ada","email":"ada@example.com, bob@example.com"}`, wantStatus: http.StatusBadRequest},
		{name: "Missing start", body: `{"name":"Ada","email":"ada@example.com"}`, wantStatus: http.StatusBadRequest},
		{name: "Slot taken", body: valid, ucErr: booking.ErrSlotUnavailable, wantStatus: http.StatusConflict},
		{name: "Phone required", body: valid, ucErr: booking.ErrPhoneRequired, wantStatus: http.StatusBadRequest},
		{name: "Rate limited", body: valid, limiter: denyAll{}, wantStatus: http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.ucErr}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/event-types/intro-call/bookings", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(uc, tt.limiter).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated && uc.bookIn.Slug != "intro-call" {
				t.Errorf("expected slug from path, got %q", uc.bookIn.Slug)
			}
			if tt.wantStatus == http.StatusCreated && uc.bookIn.Email != "ada@example.com" {
				t.Errorf("expected bare address, got %q", uc.bookIn.Email)
			}
			if tt.wantStatus == http.StatusBadRequest && tt.ucErr == nil && uc.bookIn.Email != "" {
				t.Errorf("usecase should not be called, got email %q", uc.bookIn.Email)
			}
		})
	}
}

func TestInvitationHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-1/invite.ics", nil)
		w := httptest.NewRecorder()
		newRouter(&stubUseCase{}, nil).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
			t.Errorf("unexpected content type %q", ct)
		}
	})

	t.Run("Not confirmed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-1/invite.ics", nil)
		w := httptest.NewRecorder()
		newRouter(&stubUseCase{err: booking.ErrBookingNotConfirmed}, nil).ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}
