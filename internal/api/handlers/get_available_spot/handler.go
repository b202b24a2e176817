package get_available_spot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const (
	msgInvalidType     = "некорректный тип места, ожидается car или bike"
	msgBranchNotFound  = "филиал не найден"
	msgNoAvailableSpot = "свободных мест этого типа нет"
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

// Handle GET /api/v1/branches/{branch}/spots/available?type=car
// Без параметра type ищется машиноместо.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branch := mux.Vars(r)["branch"]

	spotType := domain.SpotType(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))))
	if spotType == "" {
		spotType = domain.SpotTypeCar
	}
	if !spotType.IsValid() {
		h.logger.Warn("GET /spots/available - Invalid type: %q", spotType)
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	registry, err := h.directory.Open(branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			h.logger.Warn("GET /spots/available - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)
			return
		}
		h.logger.Error("GET /spots/available - Failed to open branch: branch=%s, error=%v", branch, err)
		handlers.RespondInternalError(w)
		return
	}

	spot, err := registry.NextAvailable(spotType)
	if err != nil {
		if errors.Is(err, spots.ErrNoAvailableSpot) {
			h.logger.Info("GET /spots/available - No free spot: branch=%s, type=%s", branch, spotType)
			handlers.RespondNotFound(w, msgNoAvailableSpot)
			return
		}
		h.logger.Error("GET /spots/available - Failed to find spot: branch=%s, error=%v", branch, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spots/available - Spot found: branch=%s, type=%s, spot_id=%d", branch, spotType, spot.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSpotResponse(spot))
}
