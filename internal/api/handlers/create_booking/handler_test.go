package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/court-booking-service/internal/api/middleware"
	createBooking "github.com/courtbook/court-booking-service/internal/usecase/create_booking"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp   *createBooking.Response
	err    error
	gotReq *createBooking.Request
}

func (u *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	u.gotReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

func doRequest(t *testing.T, uc *stubUseCase, body string, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, stubLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withAuth {
		req.Header.Set(middleware.HeaderUserID, "7")
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"courtId":1,"date":"2030-06-15","slotIds":[1,2]}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		BookingID: 42,
		ClientID:  7,
		CourtID:   1,
		Date:      time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC),
		SlotIDs:   []int64{1, 2},
		LineIDs:   []int64{1, 2, 3, 4},
		Total:     500,
		Status:    "confirmed",
		CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"total":500`)

	// clientID берётся из заголовка аутентификации, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.ClientID)
	// список услуг не передавался: nil, а не пустой срез
	assert.Nil(t, uc.gotReq.ServiceIDs)
}

func TestHandle_ExplicitEmptyServiceList(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{Date: time.Now()}}

	rec := doRequest(t, uc, `{"courtId":1,"date":"2030-06-15","slotIds":[1],"serviceIds":[]}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.NotNil(t, uc.gotReq.ServiceIDs)
	assert.Empty(t, uc.gotReq.ServiceIDs)
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"courtId":1,"date":"15.06.2030","slotIds":[1]}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot taken", &createBooking.SlotTakenError{SlotID: 2}, http.StatusConflict},
		{"busy", createBooking.ErrBusy, http.StatusServiceUnavailable},
		{"past date", createBooking.ErrPastDate, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"court not found", createBooking.ErrCourtNotFound, http.StatusNotFound},
		{"client not found", createBooking.ErrClientNotFound, http.StatusNotFound},
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound},
		{"no services", createBooking.ErrNoServiceAssociation, http.StatusUnprocessableEntity},
		{"foreign service", createBooking.ErrForeignService, http.StatusUnprocessableEntity},
		{"permission denied", createBooking.ErrPermissionDenied, http.StatusForbidden},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_ConflictNamesSlot(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: &createBooking.SlotTakenError{SlotID: 2}}, validBody, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "2")
}

func TestHandle_BusySetsRetryAfter(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: createBooking.ErrBusy}, validBody, true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}
