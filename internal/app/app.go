package app

import (
	"time"

	"orderdesk/internal/handlers/rest/healthcheck_head"
	"orderdesk/internal/handlers/rest/order_get"
	"orderdesk/internal/handlers/rest/order_rider_put"
	"orderdesk/internal/handlers/rest/order_status_put"
	"orderdesk/internal/handlers/rest/orders_get"
	"orderdesk/internal/handlers/rest/orders_stats_get"
	"orderdesk/internal/handlers/rest/riders_get"
	"orderdesk/internal/pkg/middlewares/auth"
	orderService "orderdesk/internal/service/order"
	"orderdesk/pkg/background"
)

type (
	PrioritySweepInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceRider      ServiceRider
	DB                healthcheck_head.Pinger
	Verifier          *auth.Verifier
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	orders_stats_get.Service
	order_status_put.Service
	order_rider_put.Service
}

type ServiceRider interface {
	riders_get.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
