package register_pass

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/rules"
	registerPass "github.com/m04kA/SMC-ParkingService/internal/usecase/register_pass"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные абонемента"
	msgRuleViolation      = "абонемент не соответствует правилам"
)

type Handler struct {
	useCase RegisterPassUseCase
	logger  Logger
}

func NewHandler(useCase RegisterPassUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/passes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterPassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /passes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, registerPass.ErrInvalidInput):
			h.logger.Warn("POST /passes - Invalid input: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+errorDetail(err))

		case errors.Is(err, rules.ErrValidation):
			h.logger.Warn("POST /passes - Rule violation: %v", err)
			handlers.RespondValidationError(w, msgRuleViolation, err)

		default:
			h.logger.Error("POST /passes - Failed to register pass: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /passes - Pass registered: pass_id=%d, type=%s, days=%d",
		result.ID, result.PassType, result.Days)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// errorDetail отрезает префикс sentinel-ошибки, оставляя описание поля
func errorDetail(err error) string {
	return strings.TrimPrefix(err.Error(), registerPass.ErrInvalidInput.Error()+": ")
}
