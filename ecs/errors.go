package ecs

import "errors"

var (
	// ErrMissingTypeTag is returned when a component value's type was never
	// registered with the world's ComponentRegistry.
	ErrMissingTypeTag = errors.New("ecs: component type not registered")

	// ErrEntityNotAlive is returned when a component is added to an entity that
	// was destroyed or never created.
	ErrEntityNotAlive = errors.New("ecs: entity not alive")

	// ErrInvalidQuery is returned for a query with an empty With set.
	ErrInvalidQuery = errors.New("ecs: query requires at least one With component")
)
