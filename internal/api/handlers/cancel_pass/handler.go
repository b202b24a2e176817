package cancel_pass

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
	msgCannotCancel  = "абонемент не может быть отменен"
	msgConflict      = "статус абонемента изменился, повторите запрос"
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

// Handle POST /api/v1/passes/{passId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passID, err := strconv.ParseInt(mux.Vars(r)["passId"], 10, 64)
	if err != nil || passID <= 0 {
		h.logger.Warn("POST /passes/{id}/cancel - Invalid pass ID: %q", mux.Vars(r)["passId"])
		handlers.RespondBadRequest(w, msgInvalidPassID)
		return
	}

	pass, err := h.service.Cancel(r.Context(), passID)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrPassNotFound):
			h.logger.Warn("POST /passes/{id}/cancel - Pass not found: pass_id=%d", passID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, passes.ErrCannotCancel):
			h.logger.Warn("POST /passes/{id}/cancel - Cannot cancel: pass_id=%d", passID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, passes.ErrConflict):
			h.logger.Warn("POST /passes/{id}/cancel - Concurrent status change: pass_id=%d", passID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /passes/{id}/cancel - Failed to cancel pass: pass_id=%d, error=%v", passID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /passes/{id}/cancel - Pass cancelled: pass_id=%d, status=%s", passID, pass.Status)
	handlers.RespondJSON(w, http.StatusOK, pass)
}
