package services

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductUnavailable   = errors.New("product unavailable")
	ErrAnotherRestaurant    = errors.New("cart has another restaurant")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrNotPermitted         = errors.New("not permitted")
	ErrNoActiveConversation = errors.New("no active checkout conversation")
)
