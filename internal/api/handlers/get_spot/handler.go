package get_spot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const (
	msgInvalidSpotID  = "некорректный ID места"
	msgBranchNotFound = "филиал не найден"
	msgSpotNotFound   = "место не найдено"
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

// Handle GET /api/v1/branches/{branch}/spots/{spotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	branch := vars["branch"]

	spotID, err := strconv.ParseInt(vars["spotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{branch}/spots/{id} - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	registry, err := h.directory.Open(branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			h.logger.Warn("GET /branches/{branch}/spots/{id} - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)
			return
		}
		h.logger.Error("GET /branches/{branch}/spots/{id} - Failed to open branch: branch=%s, error=%v", branch, err)
		handlers.RespondInternalError(w)
		return
	}

	spot, err := registry.SelectSpot(spotID)
	if err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			h.logger.Warn("GET /branches/{branch}/spots/{id} - Spot not found: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)
			return
		}
		h.logger.Error("GET /branches/{branch}/spots/{id} - Failed to select spot: spot_id=%d, error=%v", spotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{branch}/spots/{id} - Spot retrieved: branch=%s, spot_id=%d", branch, spotID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSpotResponse(spot))
}
