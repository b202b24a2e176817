package reset_branch

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
)

const (
	msgBranchNotFound = "филиал не найден"
)

type Handler struct {
	directory BranchDirectory
	metrics   Metrics
	logger    Logger
}

func NewHandler(directory BranchDirectory, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle POST /api/v1/branches/{branch}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branch := mux.Vars(r)["branch"]

	registry, err := h.directory.Reset(branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			h.logger.Warn("POST /branches/{branch}/reset - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)
			return
		}
		h.logger.Error("POST /branches/{branch}/reset - Failed to reset branch: branch=%s, error=%v", branch, err)
		handlers.RespondInternalError(w)
		return
	}

	stats := registry.Stats()
	h.metrics.SetBranchUnits(branch, stats.AvailableCarSpots, stats.AvailableBikeSlots, stats.TotalOccupied)

	h.logger.Info("POST /branches/{branch}/reset - Dashboard reset: branch=%s", branch)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDashboardResponse(branch, registry.ListSpots(), stats))
}
