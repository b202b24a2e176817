package resolve_pass_extension

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/passes"
)

const (
	msgInvalidPassID      = "некорректный ID абонемента"
	msgInvalidRequestBody = "некорректное тело запроса, ожидается {\"approve\": true|false}"
	msgNotFound           = "абонемент не найден"
	msgNoPendingExtension = "у абонемента нет запроса на продление"
	msgConflict           = "статус абонемента изменился, повторите запрос"
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

// Handle POST /api/v1/passes/{passId}/extension/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passID, err := strconv.ParseInt(mux.Vars(r)["passId"], 10, 64)
	if err != nil || passID <= 0 {
		h.logger.Warn("POST /passes/{id}/extension/resolve - Invalid pass ID: %q", mux.Vars(r)["passId"])
		handlers.RespondBadRequest(w, msgInvalidPassID)
		return
	}

	var req ResolveExtensionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Approve == nil {
		h.logger.Warn("POST /passes/{id}/extension/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pass, err := h.service.ResolveExtension(r.Context(), passID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrPassNotFound):
			h.logger.Warn("POST /passes/{id}/extension/resolve - Pass not found: pass_id=%d", passID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, passes.ErrNoPendingExtension):
			h.logger.Warn("POST /passes/{id}/extension/resolve - No pending extension: pass_id=%d", passID)
			handlers.RespondConflict(w, msgNoPendingExtension)

		case errors.Is(err, passes.ErrConflict):
			h.logger.Warn("POST /passes/{id}/extension/resolve - Concurrent status change: pass_id=%d", passID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /passes/{id}/extension/resolve - Failed to resolve extension: pass_id=%d, error=%v",
				passID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /passes/{id}/extension/resolve - Extension resolved: pass_id=%d, approve=%t, status=%s",
		passID, *req.Approve, pass.Status)
	handlers.RespondJSON(w, http.StatusOK, pass)
}
