package order_get

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
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
	handlerLog := log.With(logger.NewField("handler", "order_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "")
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("get order")
			respond.Error(w, h.log, http.StatusInternalServerError, "")
		}
		return
	}

	if !principal.CanAccessRestaurant(orderEntity.RestaurantID) {
		respond.Error(w, h.log, http.StatusForbidden, "order belongs to another restaurant")
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.OrderFromEntity(*orderEntity, time.Now().UTC()))
}
