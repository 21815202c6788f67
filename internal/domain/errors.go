package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition indicates an order status change the delivery
	// lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUpstream indicates a failure talking to an external collaborator.
	ErrUpstream = errors.New("upstream failure")
)
