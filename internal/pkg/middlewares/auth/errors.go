package auth

import "errors"

var (
	ErrMissingToken      = errors.New("missing bearer token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnknownRole       = errors.New("unknown role")
	ErrMissingSubject    = errors.New("token subject is empty")
	ErrMissingRestaurant = errors.New("restaurant owner token without restaurant_id")
)
