package reserve_spot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/rules"
	reserveSpot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_spot"
)

const (
	msgInvalidSpotID      = "некорректный ID места"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "заполните имя, email, пароль, время начала и окончания"
	msgInvalidTime        = "некорректное время бронирования"
	msgBranchNotFound     = "филиал не найден"
	msgSpotNotFound       = "место не найдено"
)

type Handler struct {
	useCase ReserveSpotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSpotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/branches/{branch}/spots/{spotId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	branch := vars["branch"]

	spotID, err := strconv.ParseInt(vars["spotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /spots/{id}/reservations - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	var req ReserveSpotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spots/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(branch, spotID))
	if err != nil {
		switch {
		case errors.Is(err, reserveSpot.ErrInvalidInput):
			h.logger.Warn("POST /spots/{id}/reservations - Invalid input: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rules.ErrValidation):
			h.logger.Warn("POST /spots/{id}/reservations - Time rejected: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondValidationError(w, msgInvalidTime, err)

		case errors.Is(err, reserveSpot.ErrBranchNotFound):
			h.logger.Warn("POST /spots/{id}/reservations - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, reserveSpot.ErrSpotNotFound):
			h.logger.Warn("POST /spots/{id}/reservations - Spot not found: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		default:
			h.logger.Error("POST /spots/{id}/reservations - Failed to reserve spot: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spots/{id}/reservations - Spot reserved: branch=%s, spot_id=%d, occupancy=%d",
		branch, spotID, result.Spot.Occupancy)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
