package get_spot

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
	h := NewHandler(branches.NewDirectory(domain.DefaultBranches(), domain.DefaultSpotLayout(), log), log)

	tests := []struct {
		name       string
		branch     string
		spotID     string
		wantStatus int
		wantType   string
	}{
		{name: "car spot", branch: "chennai", spotID: "1", wantStatus: http.StatusOK, wantType: "car"},
		{name: "bike spot", branch: "chennai", spotID: "9", wantStatus: http.StatusOK, wantType: "bike"},
		{name: "unknown spot", branch: "chennai", spotID: "99", wantStatus: http.StatusNotFound},
		{name: "bad id", branch: "chennai", spotID: "abc", wantStatus: http.StatusBadRequest},
		{name: "unknown branch", branch: "paris", spotID: "1", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = mux.SetURLVars(req, map[string]string{"branch": tt.branch, "spotId": tt.spotID})
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType == "" {
				return
			}
			var body handlers.SpotResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body.Type)
			assert.Equal(t, "available", body.Status)
		})
	}
}
