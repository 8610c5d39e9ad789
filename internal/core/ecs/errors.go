package ecs

import "errors"

var (
	// ErrComponentNotFound is returned by Get when the entity has no
	// component of the requested kind.
	ErrComponentNotFound = errors.New("component not attached")

	// ErrComponentAlreadyAttached is returned by Attach when the entity
	// already holds a component of the same kind. An entity carries at most
	// one component per kind and there is no removal, so a second attach is
	// rejected rather than replacing the first.
	ErrComponentAlreadyAttached = errors.New("component kind already attached")

	// ErrTooManyComponentTypes is returned when registering a new component
	// kind would exceed MaxComponentTypes.
	ErrTooManyComponentTypes = errors.New("too many component kinds")
)
