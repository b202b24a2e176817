package get_available_spot

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func TestHandle(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, logger.LevelError)
	directory := branches.NewDirectory(domain.DefaultBranches(), domain.SpotLayout{
		CarSpots: 1, CarCapacity: 1, BikeSpots: 2, BikeCapacity: 2,
	}, log)
	h := NewHandler(directory, log)

	registry, err := directory.Open("trichy")
	require.NoError(t, err)
	_, _, err = registry.Reserve(1, domain.ReservationDetails{Name: "Asha"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		branch     string
		query      string
		wantStatus int
		wantID     int64
	}{
		{name: "bike", branch: "trichy", query: "?type=BIKE", wantStatus: http.StatusOK, wantID: 2},
		{name: "no free car", branch: "trichy", wantStatus: http.StatusNotFound},
		{name: "car in other branch", branch: "chennai", query: "?type=car", wantStatus: http.StatusOK, wantID: 1},
		{name: "unknown type", branch: "trichy", query: "?type=truck", wantStatus: http.StatusBadRequest},
		{name: "unknown branch", branch: "paris", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			req = mux.SetURLVars(req, map[string]string{"branch": tt.branch})
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantID == 0 {
				return
			}
			var body handlers.SpotResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantID, body.ID)
		})
	}
}
