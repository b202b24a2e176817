package reallocate_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	reallocateReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/reallocate_reservation"
)

const (
	msgInvalidSpotID       = "некорректный ID места"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные переноса"
	msgCredentialsRequired = "для переноса укажите email и пароль"
	msgInvalidCredentials  = "email или пароль не совпадают с бронированием"
	msgBranchNotFound      = "филиал не найден"
	msgSpotNotFound        = "место не найдено"
	msgNoReservation       = "у места нет бронирования для переноса"
	msgNoAvailableSpot     = "нет другого свободного места этого типа"
)

type Handler struct {
	useCase ReallocateReservationUseCase
	logger  Logger
}

func NewHandler(useCase ReallocateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/branches/{branch}/spots/{spotId}/reallocate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	branch := vars["branch"]

	spotID, err := strconv.ParseInt(vars["spotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /spots/{id}/reallocate - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	var req ReallocateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spots/{id}/reallocate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(branch, spotID))
	if err != nil {
		switch {
		case errors.Is(err, reallocateReservation.ErrCredentialsRequired):
			h.logger.Warn("POST /spots/{id}/reallocate - Credentials missing: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondBadRequest(w, msgCredentialsRequired)

		case errors.Is(err, reallocateReservation.ErrInvalidInput):
			h.logger.Warn("POST /spots/{id}/reallocate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reallocateReservation.ErrInvalidCredentials):
			h.logger.Warn("POST /spots/{id}/reallocate - Credentials rejected: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondForbidden(w, msgInvalidCredentials)

		case errors.Is(err, reallocateReservation.ErrBranchNotFound):
			h.logger.Warn("POST /spots/{id}/reallocate - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, reallocateReservation.ErrSpotNotFound):
			h.logger.Warn("POST /spots/{id}/reallocate - Spot not found: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, reallocateReservation.ErrNoReservation):
			h.logger.Warn("POST /spots/{id}/reallocate - No reservation: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondConflict(w, msgNoReservation)

		case errors.Is(err, reallocateReservation.ErrNoAvailableSpot):
			h.logger.Warn("POST /spots/{id}/reallocate - No alternate spot: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondConflict(w, msgNoAvailableSpot)

		default:
			h.logger.Error("POST /spots/{id}/reallocate - Failed to reallocate: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spots/{id}/reallocate - Reservation moved: branch=%s, from=%d, to=%d",
		branch, result.From.ID, result.To.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
