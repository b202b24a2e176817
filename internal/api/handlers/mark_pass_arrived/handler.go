package mark_pass_arrived

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/passes"
)

const (
	msgInvalidPassID = "некорректный ID абонемента"
	msgNotFound      = "абонемент не найден"
)

type Handler struct {
	service PassService
	logger  Logger
}

func NewHandler(service PassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/passes/{passId}/arrived
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passID, err := strconv.ParseInt(mux.Vars(r)["passId"], 10, 64)
	if err != nil || passID <= 0 {
		h.logger.Warn("POST /passes/{id}/arrived - Invalid pass ID: %q", mux.Vars(r)["passId"])
		handlers.RespondBadRequest(w, msgInvalidPassID)
		return
	}

	pass, err := h.service.MarkArrived(r.Context(), passID)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrPassNotFound):
			h.logger.Warn("POST /passes/{id}/arrived - Pass not found: pass_id=%d", passID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /passes/{id}/arrived - Failed to mark arrival: pass_id=%d, error=%v", passID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /passes/{id}/arrived - Pass marked as arrived: pass_id=%d, status=%s", passID, pass.Status)
	handlers.RespondJSON(w, http.StatusOK, pass)
}
