package riders_get

import (
	"net/http"
	"strconv"

	"orderdesk/internal/handlers/rest/dto"
	"orderdesk/internal/handlers/rest/respond"
	"orderdesk/internal/pkg/middlewares/auth"
	"orderdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "riders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает список курьеров для назначения, ?active=true оставляет только активных.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "")
		return
	}
	if !principal.IsAdmin() {
		respond.Error(w, h.log, http.StatusForbidden, "riders list requires admin role")
		return
	}

	active := r.URL.Query().Get("active")
	if err := dto.Validator().Var(active, "omitempty,boolean"); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "active must be a boolean")
		return
	}
	activeOnly, _ := strconv.ParseBool(active)

	riders, err := h.service.GetRiders(r.Context(), activeOnly)
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("get riders")
		respond.Error(w, h.log, http.StatusInternalServerError, "")
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.RidersFromEntities(riders))
}
