package orders_stats_get

import (
	"errors"
	"net/http"

	"orderdesk/internal/handlers/rest/dto"
	"orderdesk/internal/handlers/rest/respond"
	"orderdesk/internal/pkg/middlewares/auth"
	"orderdesk/internal/service/order"
	"orderdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_stats_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает агрегаты дашборда по тем же фильтрам, что и GET /orders.
// limit и offset на статистику не влияют.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "")
		return
	}

	filter, err := dto.NewOrdersQuery(r.URL.Query()).Filter()
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	filter, ok = principal.ScopeFilter(filter)
	if !ok {
		respond.Error(w, h.log, http.StatusForbidden, "restaurant is out of scope")
		return
	}

	stats, err := h.service.GetStats(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidFilter):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("get order stats")
			respond.Error(w, h.log, http.StatusInternalServerError, "")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.StatsFromEntity(*stats))
}
