package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidSpotID       = "некорректный ID места"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные отмены"
	msgCredentialsRequired = "для отмены укажите email и пароль"
	msgInvalidCredentials  = "email или пароль не совпадают с бронированием"
	msgBranchNotFound      = "филиал не найден"
	msgSpotNotFound        = "место не найдено"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/branches/{branch}/spots/{spotId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	branch := vars["branch"]

	spotID, err := strconv.ParseInt(vars["spotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /spots/{id}/cancel - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spots/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(branch, spotID))
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrCredentialsRequired):
			h.logger.Warn("POST /spots/{id}/cancel - Credentials missing: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondBadRequest(w, msgCredentialsRequired)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /spots/{id}/cancel - Invalid input: branch=%s, spot_id=%d, error=%v", branch, spotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelReservation.ErrInvalidCredentials):
			h.logger.Warn("POST /spots/{id}/cancel - Credentials rejected: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondForbidden(w, msgInvalidCredentials)

		case errors.Is(err, cancelReservation.ErrBranchNotFound):
			h.logger.Warn("POST /spots/{id}/cancel - Branch not found: branch=%s", branch)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, cancelReservation.ErrSpotNotFound):
			h.logger.Warn("POST /spots/{id}/cancel - Spot not found: branch=%s, spot_id=%d", branch, spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		default:
			h.logger.Error("POST /spots/{id}/cancel - Failed to cancel reservation: branch=%s, spot_id=%d, error=%v",
				branch, spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spots/{id}/cancel - Reservation cancelled: branch=%s, spot_id=%d, released=%d",
		branch, spotID, result.Released)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
