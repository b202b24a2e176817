package request_pass_extension

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/passes"
)

const (
	msgInvalidPassID          = "некорректный ID абонемента"
	msgNotFound               = "абонемент не найден"
	msgCannotRequestExtension = "продление можно запросить только для активного абонемента"
	msgConflict               = "статус абонемента изменился, повторите запрос"
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

// Handle POST /api/v1/passes/{passId}/extension
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passID, err := strconv.ParseInt(mux.Vars(r)["passId"], 10, 64)
	if err != nil || passID <= 0 {
		h.logger.Warn("POST /passes/{id}/extension - Invalid pass ID: %q", mux.Vars(r)["passId"])
		handlers.RespondBadRequest(w, msgInvalidPassID)
		return
	}

	pass, err := h.service.RequestExtension(r.Context(), passID)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrPassNotFound):
			h.logger.Warn("POST /passes/{id}/extension - Pass not found: pass_id=%d", passID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, passes.ErrCannotRequestExtension):
			h.logger.Warn("POST /passes/{id}/extension - Cannot request extension: pass_id=%d", passID)
			handlers.RespondConflict(w, msgCannotRequestExtension)

		case errors.Is(err, passes.ErrConflict):
			h.logger.Warn("POST /passes/{id}/extension - Concurrent status change: pass_id=%d", passID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /passes/{id}/extension - Failed to request extension: pass_id=%d, error=%v", passID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /passes/{id}/extension - Extension requested: pass_id=%d, status=%s", passID, pass.Status)
	handlers.RespondJSON(w, http.StatusOK, pass)
}
