package extend_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/rules"
	extendReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/extend_reservation"
)

const (
	msgInvalidSpotID  = "некорректный ID места"
	msgInvalidInput   = "некорректные данные продления"
	msgInvalidEndTime = "некорректное время окончания бронирования"
	msgBranchNotFound = "филиал не найден"
	msgSpotNotFound   = "место не найдено"
	msgNoReservation  = "у места нет бронирования для продления"
)

type Handler struct {
	useCase ExtendReservationUseCase
	logger  Logger
}

func NewHandler(useCase ExtendReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/branches/{branch}/spots/{spotId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	branch := vars["branch"]

	spotID, err := strconv.ParseInt(vars["spotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /spots/{id}/extend - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendReservation.Request{Branch: branch, SpotID: spotID})
	if err != nil {
		switch {
		case errors.Is(err, extendReservation.ErrInvalidInput):
			h.logger.Warn("POST /spots/{id}/extend - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rules.ErrValidation):
			h.logger.Warn("POST /spots/{id}/extend - End time rejected: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondValidationError(w, msgInvalidEndTime, err)

		case errors.Is(err, extendReservation.ErrBranchNotFound):
			h.logger.Warn("POST /spots/{id}/extend - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, extendReservation.ErrSpotNotFound):
			h.logger.Warn("POST /spots/{id}/extend - Spot not found: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, extendReservation.ErrNoReservation):
			h.logger.Warn("POST /spots/{id}/extend - No reservation: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondConflict(w, msgNoReservation)

		default:
			h.logger.Error("POST /spots/{id}/extend - Failed to extend reservation: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spots/{id}/extend - Reservation extended: branch=%s, spot_id=%d, end=%s",
		branch, spotID, result.NewEndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
