package list_branches

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	directory BranchDirectory
	logger    Logger
}

func NewHandler(directory BranchDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/branches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches := h.directory.List()

	h.logger.Info("GET /branches - Branches retrieved: count=%d", len(branches))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBranches(branches))
}
