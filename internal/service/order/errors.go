package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidRiderID = errors.New("invalid rider id")
	ErrInvalidFilter  = errors.New("invalid order filter")
	ErrEmptyRequest   = errors.New("status request has nothing to apply")

	ErrOrderNotFound    = errors.New("order not found")
	ErrRiderNotFound    = errors.New("rider not found")
	ErrConcurrentUpdate = errors.New("order was modified concurrently")
)
