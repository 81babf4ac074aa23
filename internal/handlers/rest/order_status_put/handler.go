package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"orderdesk/internal/entities"
	"orderdesk/internal/handlers/rest/dto"
	"orderdesk/internal/handlers/rest/respond"
	"orderdesk/internal/pkg/middlewares/auth"
	"orderdesk/internal/service/lifecycle"
	"orderdesk/internal/service/order"
	"orderdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_status_put"))

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

	var request dto.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := request.Validate(); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	orderID := mux.Vars(r)["id"]

	// ресторан заказа не меняется, поэтому проверка до записи безопасна
	if !principal.IsAdmin() {
		current, err := h.service.GetOrder(r.Context(), orderID)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		if !principal.CanAccessRestaurant(current.RestaurantID) {
			respond.Error(w, h.log, http.StatusForbidden, "order belongs to another restaurant")
			return
		}
	}

	updated, err := h.service.ChangeStatus(r.Context(), orderID, entities.ParseOrderStatus(request.Status))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.log.With(
		logger.NewField("order_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
		logger.NewField("user_id", principal.UserID),
	).Info("order status changed")

	respond.JSON(w, h.log, http.StatusOK, dto.OrderFromEntity(*updated, time.Now().UTC()))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrInvalidOrderID):
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, order.ErrConcurrentUpdate):
		respond.Error(w, h.log, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		respond.Error(w, h.log, http.StatusNotFound, err.Error())
	default:
		h.log.With(logger.NewField("error", err)).Error("change order status")
		respond.Error(w, h.log, http.StatusInternalServerError, "")
	}
}
