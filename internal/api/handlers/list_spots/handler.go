package list_spots

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
	logger    Logger
}

func NewHandler(directory BranchDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/branches/{branch}/spots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branch := mux.Vars(r)["branch"]

	registry, err := h.directory.Open(branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			h.logger.Warn("GET /branches/{branch}/spots - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)
			return
		}
		h.logger.Error("GET /branches/{branch}/spots - Failed to open branch: branch=%s, error=%v", branch, err)
		handlers.RespondInternalError(w)
		return
	}

	response := handlers.NewDashboardResponse(branch, registry.ListSpots(), registry.Stats())

	h.logger.Info("GET /branches/{branch}/spots - Spots retrieved: branch=%s, count=%d", branch, len(response.Spots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
