package get_pass

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

// Handle GET /api/v1/passes/{passId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	passID, err := strconv.ParseInt(mux.Vars(r)["passId"], 10, 64)
	if err != nil || passID <= 0 {
		h.logger.Warn("GET /passes/{id} - Invalid pass ID: %q", mux.Vars(r)["passId"])
		handlers.RespondBadRequest(w, msgInvalidPassID)
		return
	}

	pass, err := h.service.GetByID(r.Context(), passID)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrPassNotFound):
			h.logger.Warn("GET /passes/{id} - Pass not found: pass_id=%d", passID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /passes/{id} - Failed to get pass: pass_id=%d, error=%v", passID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /passes/{id} - Pass retrieved: pass_id=%d, status=%s", passID, pass.Status)
	handlers.RespondJSON(w, http.StatusOK, pass)
}
