package reallocate_reservation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reallocateReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/reallocate_reservation"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeUseCase struct {
	got  *reallocateReservation.Request
	resp *reallocateReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *reallocateReservation.Request) (*reallocateReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, spotID, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelError))
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"branch": "chennai", "spotId": spotID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{resp: &reallocateReservation.Response{
		From:               &domain.ParkingSpot{ID: 1, Type: domain.SpotTypeCar, Capacity: 1, Status: domain.SpotStatusAvailable},
		To:                 &domain.ParkingSpot{ID: 4, Type: domain.SpotTypeCar, Capacity: 1, Occupancy: 1, Status: domain.SpotStatusOccupied},
		NotificationQueued: true,
	}}

	rec := serve(uc, "1", `{"email":" a@b.c ","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "chennai", uc.got.Branch)
	assert.Equal(t, int64(1), uc.got.SpotID)
	assert.Equal(t, "a@b.c", uc.got.Email)

	var body ReallocateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.To.ID)
	assert.Equal(t, "available", body.From.Status)
	assert.True(t, body.NotificationQueued)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		spotID     string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad spot id", spotID: "x", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", spotID: "1", body: `{"spot":2}`, wantStatus: http.StatusBadRequest},
		{name: "credentials required", spotID: "1", body: `{}`, err: reallocateReservation.ErrCredentialsRequired, wantStatus: http.StatusBadRequest},
		{name: "credentials rejected", spotID: "1", body: `{}`, err: reallocateReservation.ErrInvalidCredentials, wantStatus: http.StatusForbidden},
		{name: "branch not found", spotID: "1", body: `{}`, err: reallocateReservation.ErrBranchNotFound, wantStatus: http.StatusNotFound},
		{name: "spot not found", spotID: "1", body: `{}`, err: reallocateReservation.ErrSpotNotFound, wantStatus: http.StatusNotFound},
		{name: "no reservation", spotID: "1", body: `{}`, err: reallocateReservation.ErrNoReservation, wantStatus: http.StatusConflict},
		{name: "no alternate", spotID: "1", body: `{}`, err: reallocateReservation.ErrNoAvailableSpot, wantStatus: http.StatusConflict},
		{name: "internal", spotID: "1", body: `{}`, err: reallocateReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(&fakeUseCase{err: tt.err}, tt.spotID, tt.body).Code)
		})
	}
}
