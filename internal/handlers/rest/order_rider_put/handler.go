package order_rider_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
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
	handlerLog := log.With(logger.NewField("handler", "order_rider_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP назначает или снимает курьера. Доступно только админу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "")
		return
	}
	if !principal.IsAdmin() {
		respond.Error(w, h.log, http.StatusForbidden, "rider assignment requires admin role")
		return
	}

	var request dto.RiderAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "malformed request body")
		return
	}
	riderID, err := request.Target()
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.AssignRider(r.Context(), mux.Vars(r)["id"], riderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidRiderID):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, lifecycle.ErrInvalidAssignment),
			errors.Is(err, order.ErrConcurrentUpdate):
			respond.Error(w, h.log, http.StatusConflict, err.Error())
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrRiderNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("assign rider")
			respond.Error(w, h.log, http.StatusInternalServerError, "")
		}
		return
	}

	h.log.With(
		logger.NewField("order_id", updated.ID),
		logger.NewField("rider_id", updated.CurrentRiderID()),
		logger.NewField("user_id", principal.UserID),
	).Info("order rider changed")

	respond.JSON(w, h.log, http.StatusOK, dto.OrderFromEntity(*updated, time.Now().UTC()))
}
